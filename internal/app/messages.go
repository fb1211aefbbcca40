package app

import "github.com/chmouel/swipemenu/internal/config"

type (
	// postedMsg drains callbacks registered through Model.Post.
	postedMsg struct{}

	configChangedMsg  struct{}
	configReloadedMsg struct {
		cfg *config.AppConfig
		err error
	}
)
