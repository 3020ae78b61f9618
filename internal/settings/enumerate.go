package settings

// Property is one named setting value.
type Property struct {
	Name  string
	Value any
}

// ObjectInstance is what a settings UI shows for one object.
type ObjectInstance struct {
	ObjectName  string
	DisplayName string
	Properties  []Property
}

// ObjectNames lists the objects in display order.
func ObjectNames() []string {
	return []string{ObjectImage, ObjectArrows, ObjectBackground}
}

// Enumerate returns the instances for objectName. Unknown names yield nil.
func Enumerate(s Settings, objectName string) []ObjectInstance {
	switch objectName {
	case ObjectImage:
		return []ObjectInstance{{
			ObjectName:  ObjectImage,
			DisplayName: "Image",
			Properties: []Property{
				{Name: "fit", Value: string(s.Image.Fit)},
				{Name: "showCaption", Value: s.Image.ShowCaption},
			},
		}}
	case ObjectArrows:
		return []ObjectInstance{{
			ObjectName:  ObjectArrows,
			DisplayName: "Arrows",
			Properties: []Property{
				{Name: "show", Value: s.Arrows.Show},
				{Name: "color", Value: s.Arrows.Color},
			},
		}}
	case ObjectBackground:
		return []ObjectInstance{{
			ObjectName:  ObjectBackground,
			DisplayName: "Background",
			Properties: []Property{
				{Name: "color", Value: s.Background.Color},
			},
		}}
	}
	return nil
}

// Known reports whether object.property is a recognised setting.
func Known(object, property string) bool {
	for _, inst := range Enumerate(Default(), object) {
		for _, p := range inst.Properties {
			if p.Name == property {
				return true
			}
		}
	}
	return false
}
