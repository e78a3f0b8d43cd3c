package daemon

import "testing"

func TestConfigValidate(t *testing.T) {
	good := Config{ClientPort: 3010, BackendPort: 3059, HeartbeatPort: 3076}
	if err := good.Validate(); err != nil {
		t.Fatal(err)
	}

	collisions := []Config{
		{ClientPort: 3010, BackendPort: 3010, HeartbeatPort: 3076},
		{ClientPort: 3010, BackendPort: 3059, HeartbeatPort: 3010},
		{ClientPort: 3010, BackendPort: 3059, HeartbeatPort: 3059},
	}
	for _, cfg := range collisions {
		if err := cfg.Validate(); err == nil {
			t.Errorf("colliding ports accepted: %+v", cfg)
		}
	}
}

func TestIsRouter(t *testing.T) {
	if !(Config{RouterAddr: "127.0.0.1"}).isRouter() {
		t.Fatal("loopback router address not treated as router role")
	}
	if (Config{RouterAddr: "10.0.0.7"}).isRouter() {
		t.Fatal("remote router address treated as router role")
	}
}
