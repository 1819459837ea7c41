package scene

import (
	"os"
	"path/filepath"
	"testing"

	. "github.com/smartystreets/goconvey/convey"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "cube.json")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	Convey("Given a config overriding some parameters", t, func() {
		path := writeConfig(t, `{
			"width": 800,
			"autoRotate": true,
			"params": {"rotY": 0, "persp": 9.5}
		}`)
		cfg, err := LoadConfig(path)
		So(err, ShouldBeNil)

		Convey("omitted fields keep their defaults", func() {
			So(cfg.Width, ShouldEqual, 800)
			So(cfg.Height, ShouldEqual, 600)
			So(cfg.Side, ShouldEqual, DefaultSide)
			So(cfg.AutoRotate, ShouldBeTrue)
		})

		Convey("explicit zero is an override, not a missing key", func() {
			p := cfg.StartParams()
			want := DefaultParams()
			want.RotY = 0
			want.Perspective = 9.5
			So(p, ShouldResemble, want)
		})
	})

	Convey("Invalid configs are rejected", t, func() {
		_, err := LoadConfig(writeConfig(t, `{"width": -1}`))
		So(err, ShouldNotBeNil)

		_, err = LoadConfig(writeConfig(t, `{"side": 0}`))
		So(err, ShouldNotBeNil)

		_, err = LoadConfig(writeConfig(t, `{"width": `))
		So(err, ShouldNotBeNil)

		_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.json"))
		So(err, ShouldNotBeNil)
	})

	Convey("Overrides replace config values for one parameter", t, func() {
		cfg, err := LoadConfig(writeConfig(t, `{"params": {"rotX": 1, "scale": 2}}`))
		So(err, ShouldBeNil)
		cfg.Override(ParamRotX, -0.25)
		cfg.Override(ParamTransZ, 3)
		cfg.Override(ParamID(NumParams), 9)

		want := DefaultParams()
		want.RotX = -0.25
		want.TransZ = 3
		want.Scale = 2
		So(cfg.StartParams(), ShouldResemble, want)
	})

	Convey("The default config starts from the default view", t, func() {
		So(DefaultConfig().Validate(), ShouldBeNil)
		So(DefaultConfig().StartParams(), ShouldResemble, DefaultParams())
	})
}
