package mods

import (
	"errors"
	"strconv"

	"gopkg.in/yaml.v3"
)

func scalarNode(tag, value string) *yaml.Node {
	return &yaml.Node{Kind: yaml.ScalarNode, Tag: tag, Value: value}
}

func settingNode(v SettingValue) *yaml.Node {
	switch v.kind {
	case SettingBool:
		return scalarNode("!!bool", strconv.FormatBool(v.flag))
	case SettingString:
		return scalarNode("!!str", v.str)
	}
	return scalarNode("!!float", strconv.FormatFloat(v.num, 'g', -1, 64))
}

// MarshalYAML mirrors the JSON form, keeping settings in schema order.
func (m GameMod) MarshalYAML() (any, error) {
	if m.desc == nil {
		return nil, errors.New("cannot marshal the zero GameMod")
	}
	node := &yaml.Node{Kind: yaml.MappingNode}
	node.Content = append(node.Content, scalarNode("!!str", "acronym"), scalarNode("!!str", m.Acronym().String()))
	if m.HasSettings() {
		settings := &yaml.Node{Kind: yaml.MappingNode}
		m.presentSettings(func(field SettingField, value SettingValue) {
			settings.Content = append(settings.Content, scalarNode("!!str", field.Name), settingNode(value))
		})
		node.Content = append(node.Content, scalarNode("!!str", "settings"), settings)
	}
	return node, nil
}

func (g GameMods) MarshalYAML() (any, error) {
	if g.mods == nil {
		return []GameMod{}, nil
	}
	return g.mods, nil
}

func (g GameModsIntermode) MarshalYAML() (any, error) {
	return g.Acronyms(), nil
}
