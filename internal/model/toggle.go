package model

// ToggleDef описывает один toggle из манифеста
type ToggleDef struct {
	Name        string // Имя в файлах состояния (new_catalog_ui)
	GoName      string // CamelCase имя константы (NewCatalogUi)
	Ordinal     int    // Позиция в манифесте, начиная с 0
	Default     bool   // Значение после сборки набора
	Description string // Описание toggle
}

// Manifest содержимое toggles.toml
type Manifest struct {
	Package string       // Имя пакета для генерации
	Type    string       // Имя Go типа перечисления
	Toggles []*ToggleDef // В порядке объявления
}

// Names возвращает имена toggle в порядке ординалов
func (m *Manifest) Names() []string {
	names := make([]string, len(m.Toggles))
	for i, t := range m.Toggles {
		names[i] = t.Name
	}
	return names
}

// Defaults возвращает map имя -> значение по умолчанию
func (m *Manifest) Defaults() map[string]bool {
	out := make(map[string]bool, len(m.Toggles))
	for _, t := range m.Toggles {
		out[t.Name] = t.Default
	}
	return out
}
