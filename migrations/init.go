package migrations

import (
	"io/fs"

	immunization "github.com/goliatone/go-immunization"
)

func init() {
	coreFS, err := fs.Sub(immunization.GetMigrationsFS(), "data/sql/migrations")
	if err != nil {
		return
	}
	Register(coreFS)
}
