package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/jask/jaskgallery/internal/config"
	"github.com/jask/jaskgallery/internal/database"
	"github.com/jask/jaskgallery/internal/database/repository"
	"github.com/jask/jaskgallery/internal/prefs"
	"github.com/jask/jaskgallery/internal/secrets"
	"github.com/jask/jaskgallery/internal/service"
	"github.com/jask/jaskgallery/internal/settings"
	"github.com/jask/jaskgallery/internal/tui"
)

const usage = `usage:
  jaskgallery                           open the gallery
  jaskgallery import FILE               add images from a .csv or .yaml manifest
  jaskgallery list                      print stored images
  jaskgallery remove ID                 delete one stored image
  jaskgallery reset                     remove all images and saved settings
  jaskgallery roles IMAGE [TITLE]       bind result columns in the config file
  jaskgallery dsn DRIVER DSN            store the connection string for a remote source
  jaskgallery dsn DRIVER --delete [HOST]  forget a stored connection string`

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}

	db, err := openStore(ctx, cfg.Database)
	if err != nil {
		log.Fatalf("%v", err)
	}
	defer db.Close()

	// repositories
	imgRepo := repository.NewImageRepo(db)
	settingsRepo := repository.NewSettingsRepo(db)
	store := &settings.Store{Repo: settingsRepo}

	vault, err := secrets.Open()
	if err != nil {
		log.Fatalf("secrets: %v", err)
	}

	if args := os.Args[1:]; len(args) > 0 {
		cmds := commands{
			cfg:         cfg,
			images:      imgRepo,
			ingest:      &service.IngestService{Images: imgRepo},
			maintenance: &service.MaintenanceService{DB: db},
			vault:       vault,
			out:         os.Stdout,
		}
		if err := cmds.run(ctx, args); err != nil {
			log.Fatalf("%s: %v", args[0], err)
		}
		return
	}

	// restore settings from prefs file if the database has none
	if existing, err := settingsRepo.List(ctx); err == nil && len(existing) == 0 {
		if snap, ok, err := prefs.LoadSettings(); err == nil && ok {
			if err := store.Save(ctx, snap); err != nil {
				log.Printf("warn: restore settings: %v", err)
			}
		}
	}

	dsn, err := resolveDSN(cfg.Source, vault)
	if err != nil {
		log.Fatalf("source: %v", err)
	}
	cfg.Source.DSN = dsn
	source, closeSource, err := service.OpenSource(cfg.Source, db)
	if err != nil {
		log.Fatalf("source: %v", err)
	}
	defer closeSource()

	query := &service.QueryService{DB: source, Query: cfg.Source.Query, Roles: cfg.Roles, Settings: store}

	if cfg.Log.File != "" {
		f, err := tea.LogToFile(cfg.Log.File, "jaskgallery")
		if err != nil {
			log.Fatalf("log file: %v", err)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	var opts []tea.ProgramOption
	if cfg.UI.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	p := tea.NewProgram(tui.New(ctx, tui.Services{Query: query, Settings: store}), opts...)
	if _, err := p.Run(); err != nil {
		fmt.Printf("error: %v\n", err)
	}
}

// openStore migrates and opens the local database. Sample images are added only
// when the schema was just created, so a reset gallery stays empty.
func openStore(ctx context.Context, dbc config.DatabaseConfig) (*sql.DB, error) {
	if err := os.MkdirAll(filepath.Dir(dbc.Path), 0o755); err != nil {
		return nil, fmt.Errorf("mkdir db dir: %w", err)
	}
	fresh, err := database.RunMigrations(dbc.Path, dbc.Migrations)
	if err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	db, err := database.Open(dbc.Path)
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	if fresh {
		if err := database.SeedDefaults(ctx, db); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("seed defaults: %w", err)
		}
	}
	return db, nil
}

type commands struct {
	cfg         config.Config
	images      *repository.ImageRepo
	ingest      *service.IngestService
	maintenance *service.MaintenanceService
	vault       *secrets.Vault
	out         io.Writer
}

func (c commands) run(ctx context.Context, args []string) error {
	switch args[0] {
	case "import":
		if len(args) != 2 {
			return fmt.Errorf("expected one file\n%s", usage)
		}
		res, err := c.ingest.ImportFile(ctx, args[1])
		if err != nil {
			return err
		}
		for _, e := range res.Errors {
			log.Printf("warn: %v", e)
		}
		fmt.Fprintf(c.out, "imported %d, skipped %d, errors %d\n", res.Imported, res.Skipped, len(res.Errors))
		return nil
	case "list":
		imgs, err := c.images.List(ctx)
		if err != nil {
			return err
		}
		for _, img := range imgs {
			fmt.Fprintf(c.out, "%s\t%s\t%s\n", img.ID, deref(img.Title), deref(img.ImageURL))
		}
		return nil
	case "remove":
		if len(args) != 2 {
			return fmt.Errorf("expected one image id\n%s", usage)
		}
		ok, err := c.images.Delete(ctx, args[1])
		if err != nil {
			return err
		}
		if !ok {
			return fmt.Errorf("no image %q", args[1])
		}
		fmt.Fprintf(c.out, "removed %s\n", args[1])
		return nil
	case "reset":
		if err := c.maintenance.Reset(ctx); err != nil {
			return err
		}
		fmt.Fprintln(c.out, "gallery reset")
		return nil
	case "roles":
		if len(args) < 2 || len(args) > 3 {
			return fmt.Errorf("expected image column and optional title column\n%s", usage)
		}
		cfg := c.cfg
		cfg.Roles.ImageURL = args[1]
		if len(args) == 3 {
			cfg.Roles.Title = args[2]
		}
		if err := config.Save(cfg); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "image column %q, title column %q\n", cfg.Roles.ImageURL, cfg.Roles.Title)
		return nil
	case "dsn":
		return c.dsn(args[1:])
	default:
		return fmt.Errorf("unknown command\n%s", usage)
	}
}

func (c commands) dsn(args []string) error {
	switch {
	case len(args) >= 2 && len(args) <= 3 && args[1] == "--delete":
		src := secrets.Source{Driver: strings.ToLower(args[0])}
		if len(args) == 3 {
			src.Host = strings.ToLower(args[2])
		}
		if err := c.vault.Delete(src); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "deleted %s dsn\n", src)
		return nil
	case len(args) == 2:
		src := secrets.SourceOf(args[0], args[1])
		if err := c.vault.Put(src, args[1]); err != nil {
			return err
		}
		fmt.Fprintf(c.out, "stored %s dsn\n", src)
		if src.Host != c.cfg.Source.Host {
			fmt.Fprintf(c.out, "set source.host = %q to use it\n", src.Host)
		}
		return nil
	default:
		return fmt.Errorf("expected driver and dsn\n%s", usage)
	}
}

// resolveDSN picks the connection string for the configured source. A DSN in the
// config wins; remote drivers otherwise read the vault entry for the driver and
// source.host. The local sqlite source needs none.
func resolveDSN(src config.SourceConfig, vault *secrets.Vault) (string, error) {
	if dsn := strings.TrimSpace(src.DSN); dsn != "" {
		return dsn, nil
	}
	if src.Driver == "" || src.Driver == "sqlite3" {
		return "", nil
	}
	dsn, err := vault.Get(secrets.Source{Driver: src.Driver, Host: src.Host})
	if err != nil {
		return "", fmt.Errorf("no dsn for %s: %w", src.Driver, err)
	}
	return dsn, nil
}

func deref(s *string) string {
	if s == nil {
		return "-"
	}
	return *s
}
