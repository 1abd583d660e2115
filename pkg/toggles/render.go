package toggles

import "strings"

// String renders one "<0|1> <name>" line per toggle in ordinal order.
// The output is accepted by LoadFile.
func (s *Set[T]) String() string {
	var b strings.Builder
	for i := 0; i < s.kind.Len(); i++ {
		if s.bits.Test(uint(i)) {
			b.WriteString("1 ")
		} else {
			b.WriteString("0 ")
		}
		name, _ := s.kind.Name(i)
		b.WriteString(name)
		b.WriteByte('\n')
	}
	return b.String()
}
