// Package config is for app wide settings that are unmarshalled
// from Viper (see: /cmd)
package config

import (
	"testing"

	"github.com/spf13/viper"
)

func TestNew_defaults(t *testing.T) {
	viper.Reset()

	c := New()

	if c.Edit.SingleCopyCoverage != 1.0 {
		t.Errorf("Edit.SingleCopyCoverage = %v, want 1.0", c.Edit.SingleCopyCoverage)
	}
	if c.Edit.CountTag != "RC" {
		t.Errorf("Edit.CountTag = %v, want RC", c.Edit.CountTag)
	}
}

func TestNew_fromViper(t *testing.T) {
	viper.Reset()
	viper.Set("version", "gfa2")
	viper.Set("validate", false)
	viper.Set("edit.single-copy-coverage", 12.5)
	viper.Set("edit.count-tag", "KC")

	c := New()

	if c.Version != VersionGFA2 {
		t.Errorf("Version = %v, want %v", c.Version, VersionGFA2)
	}
	if c.Validate {
		t.Errorf("Validate = true, want false")
	}
	if c.Edit.SingleCopyCoverage != 12.5 {
		t.Errorf("Edit.SingleCopyCoverage = %v, want 12.5", c.Edit.SingleCopyCoverage)
	}
	if c.Edit.CountTag != "KC" {
		t.Errorf("Edit.CountTag = %v, want KC", c.Edit.CountTag)
	}
}
