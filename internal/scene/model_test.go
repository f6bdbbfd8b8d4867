package scene

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestMaterialIndex(t *testing.T) {
	tests := map[string]struct {
		meshMaterial []int32
		mesh         int
		count        int
		exp          int
		expOK        bool
	}{
		"assigned":           {meshMaterial: []int32{0, 2}, mesh: 1, count: 3, exp: 2, expOK: true},
		"no assignments":     {meshMaterial: nil, mesh: 0, count: 1, expOK: false},
		"index out of range": {meshMaterial: []int32{5}, mesh: 0, count: 2, expOK: false},
		"negative index":     {meshMaterial: []int32{-1}, mesh: 0, count: 2, expOK: false},
		"mesh past the list": {meshMaterial: []int32{0}, mesh: 3, count: 1, expOK: false},
	}
	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			got, ok := materialIndex(tt.meshMaterial, tt.mesh, tt.count)
			testutil.AssertEqual(t, "ok", ok, tt.expOK)
			if ok {
				testutil.AssertEqual(t, "index", got, tt.exp)
			}
		})
	}
}
