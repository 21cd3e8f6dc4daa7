package sprite

import (
	"fmt"

	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

var Regular *opentype.Font

func loadFonts() (err error) {
	Regular, err = opentype.Parse(goregular.TTF)
	if err != nil {
		return fmt.Errorf("parsing goregular: %w", err)
	}
	return nil
}
