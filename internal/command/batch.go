package command

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

var errUnknownFormat = errors.New("unknown file format")

// Batch is a list of calculations read from a file.
//
// YAML:
//
//	calculations:
//	  - name: mortgage
//	    func: pmt
//	    rate: 0.01
//	    nper: 360
//	    pv: 100000
//
// TOML:
//
//	[[calculations]]
//	name = "mortgage"
//	func = "pmt"
//	rate = 0.01
//	nper = 360
//	pv = 100000.0
type Batch struct {
	Calculations []Calculation `yaml:"calculations" toml:"calculations"`
}

// LoadBatch reads a batch from a YAML (.yaml, .yml) or TOML (.toml) file.
func LoadBatch(path string) (Batch, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Batch{}, fmt.Errorf("reading batch: %w", err)
	}
	var b Batch
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &b)
	case ".toml":
		err = toml.Unmarshal(data, &b)
	default:
		return Batch{}, fmt.Errorf("reading batch %q: %w", ext, errUnknownFormat)
	}
	if err != nil {
		return Batch{}, fmt.Errorf("decoding batch: %w", err)
	}
	return b, nil
}
