package overlay

import (
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/ivlev/slidebar/internal/bar"
)

// ShapeNamer gives materialized shapes recognizable names so they can be
// found and recolored or removed later.
type ShapeNamer struct {
	Prefix string
}

// DefaultNamer names shapes ProgressBar_<Role>_<uuid>
var DefaultNamer = ShapeNamer{Prefix: "ProgressBar"}

func (n ShapeNamer) Name(role bar.ColorRole) string {
	return fmt.Sprintf("%s_%s_%s", n.Prefix, role, uuid.NewString())
}

func (n ShapeNamer) IsActive(name string) bool {
	return n.has(name, bar.RoleActive)
}

func (n ShapeNamer) IsInactive(name string) bool {
	return n.has(name, bar.RoleInactive)
}

// Owns reports whether name was produced by this namer
func (n ShapeNamer) Owns(name string) bool {
	return n.IsActive(name) || n.IsInactive(name)
}

func (n ShapeNamer) has(name string, role bar.ColorRole) bool {
	rest, ok := strings.CutPrefix(name, n.Prefix+"_"+role.String()+"_")
	if !ok {
		return false
	}
	_, err := uuid.Parse(rest)
	return err == nil
}
