// Package xkb reads the XKB layout registry (evdev.xml) to translate
// between layout codes like "ru" and the pretty names compositors
// report, like "Russian".
package xkb

import (
	"encoding/xml"
	"fmt"
	"os"
)

// DefaultRegistryPath is where distributions install the evdev rules
// registry.
const DefaultRegistryPath = "/usr/share/X11/xkb/rules/evdev.xml"

type Registry struct {
	XMLName    xml.Name   `xml:"xkbConfigRegistry"`
	LayoutList layoutList `xml:"layoutList"`
}

type configItem struct {
	Name        string `xml:"name"`
	Description string `xml:"description"`
}

type variant struct {
	ConfigItem configItem `xml:"configItem"`
}

type variantList struct {
	Variant []variant `xml:"variant"`
}

type layout struct {
	ConfigItem  configItem  `xml:"configItem"`
	VariantList variantList `xml:"variantList"`
}

type layoutList struct {
	Layout []layout `xml:"layout"`
}

// ParseRegistry loads and decodes the registry at path.
func ParseRegistry(path string) (*Registry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer file.Close()

	registry := &Registry{}
	if err := xml.NewDecoder(file).Decode(registry); err != nil {
		return nil, fmt.Errorf("decode xml: %w", err)
	}

	return registry, nil
}

// DescriptionFor returns the pretty name for a layout code and
// optional variant code, or "" when the registry does not know the
// pair.
func (r *Registry) DescriptionFor(layout, variant string) string {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Name != layout {
			continue
		}

		if variant == "" {
			return l.ConfigItem.Description
		}

		for _, v := range l.VariantList.Variant {
			if v.ConfigItem.Name == variant {
				return v.ConfigItem.Description
			}
		}
	}

	return ""
}

// LayoutAndVariantFor resolves a pretty name back to its layout and
// variant codes. Both are "" when the name is unknown.
func (r *Registry) LayoutAndVariantFor(prettyName string) (string, string) {
	for _, l := range r.LayoutList.Layout {
		if l.ConfigItem.Description == prettyName {
			return l.ConfigItem.Name, ""
		}

		for _, v := range l.VariantList.Variant {
			if v.ConfigItem.Description == prettyName {
				return l.ConfigItem.Name, v.ConfigItem.Name
			}
		}
	}

	return "", ""
}
