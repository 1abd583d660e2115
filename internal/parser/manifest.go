package parser

import (
	"fmt"
	"go/token"
	"os"
	"regexp"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/vovanwin/enumtoggles/internal/model"
)

const (
	DefaultPackage = "features"
	DefaultType    = "Feature"
)

var nameRe = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_-]*$`)

// toggleEntry представляет один [[toggles]] из toggles.toml
type toggleEntry struct {
	Name        string `toml:"name"`
	Default     bool   `toml:"default"`
	Description string `toml:"description"`
}

// manifestFile корневая структура toggles.toml
type manifestFile struct {
	Package string        `toml:"package"`
	Type    string        `toml:"type"`
	Toggles []toggleEntry `toml:"toggles"`
}

// ParseManifest читает toggles.toml и возвращает toggle в порядке объявления
func ParseManifest(path string) (*model.Manifest, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("чтение %s: %w", path, err)
	}

	m, err := DecodeManifest(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// DecodeManifest разбирает содержимое toggles.toml
func DecodeManifest(content string) (*model.Manifest, error) {
	var mf manifestFile
	md, err := toml.Decode(content, &mf)
	if err != nil {
		return nil, fmt.Errorf("декодирование: %w", err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("неизвестные ключи: %s", strings.Join(keys, ", "))
	}

	m := &model.Manifest{
		Package: mf.Package,
		Type:    mf.Type,
	}
	if m.Package == "" {
		m.Package = DefaultPackage
	}
	if m.Type == "" {
		m.Type = DefaultType
	}

	if !token.IsIdentifier(m.Package) || strings.ToLower(m.Package) != m.Package {
		return nil, fmt.Errorf("недопустимое имя пакета %q", m.Package)
	}
	if !token.IsExported(m.Type) || !token.IsIdentifier(m.Type) {
		return nil, fmt.Errorf("имя типа %q должно быть экспортируемым идентификатором", m.Type)
	}

	names := make(map[string]bool, len(mf.Toggles))
	goNames := make(map[string]string, len(mf.Toggles))
	for i, entry := range mf.Toggles {
		def, err := entryToDef(i, entry)
		if err != nil {
			return nil, fmt.Errorf("toggle #%d: %w", i, err)
		}
		if names[def.Name] {
			return nil, fmt.Errorf("toggle %q объявлен дважды", def.Name)
		}
		if other, ok := goNames[def.GoName]; ok {
			return nil, fmt.Errorf("toggle %q и %q дают одно Go имя %s", other, def.Name, def.GoName)
		}
		names[def.Name] = true
		goNames[def.GoName] = def.Name
		m.Toggles = append(m.Toggles, def)
	}

	return m, nil
}

func entryToDef(ordinal int, entry toggleEntry) (*model.ToggleDef, error) {
	if entry.Name == "" {
		return nil, fmt.Errorf("пустое имя")
	}
	if !nameRe.MatchString(entry.Name) {
		return nil, fmt.Errorf("недопустимое имя %q (допустимы буквы, цифры, _ и -, первой должна быть буква)", entry.Name)
	}

	return &model.ToggleDef{
		Name:        entry.Name,
		GoName:      ToGoName(entry.Name),
		Ordinal:     ordinal,
		Default:     entry.Default,
		Description: entry.Description,
	}, nil
}
