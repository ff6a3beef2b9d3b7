package sten_test

import (
	"testing"

	"github.com/strictenc/sten"
)

func TestDataPath_String(t *testing.T) {
	cases := []struct {
		path sten.DataPath
		want string
	}{
		{nil, "/"},
		{sten.DataPath{sten.FieldStep("items")}, "/items"},
		{sten.DataPath{sten.FieldStep("items"), sten.IndexStep(2)}, "/items/2"},
		{sten.DataPath{sten.KeyStep(0)}, "/key[0]"},
		{sten.DataPath{sten.ValueStep(3), sten.VariantStep("circle")}, "/val[3]/circle"},
	}
	for _, tc := range cases {
		if got := tc.path.String(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}
