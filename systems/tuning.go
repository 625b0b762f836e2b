package systems

import (
	"github.com/BvdVoort/PWS/components"
	"github.com/BvdVoort/PWS/config"
	"github.com/BvdVoort/PWS/tags"
	"github.com/yohamta/donburi"
)

// ApplyConfig hands a new tuning to every character. The config is validated
// once; on error nothing changes.
func ApplyConfig(w donburi.World, cfg config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}
	tags.Character.Each(w, func(e *donburi.Entry) {
		// already validated above
		_ = components.Character.Get(e).Controller.SetConfig(cfg)
	})
	return nil
}
