// Package registry holds three process-wide singletons — config, database
// handle, and view engine — each initialized once during startup and read
// lock-free afterward. Re-initialization is a fatal configuration error.
//
// registry 패키지는 설정, 데이터베이스 핸들, 뷰 엔진이라는 세 개의
// 프로세스 전역 싱글턴을 보유합니다. 각각 시작 시 한 번만 초기화되며
// 이후에는 락 없이 읽힙니다.
package registry

import (
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"
)

// ConfigRegistry exposes a parsed configuration tree through dot-path
// accessors (e.g. "session.cookie_name"), loaded once from YAML.
type ConfigRegistry struct {
	mu   sync.Mutex
	data map[string]interface{}
	init bool
}

// Config is the process-wide configuration singleton.
var Config = &ConfigRegistry{}

// ErrAlreadyInitialized is returned when a registry's Load/Install is
// called a second time — global registries are install-once.
type ErrAlreadyInitialized struct{ Registry string }

func (e ErrAlreadyInitialized) Error() string {
	return "websvrutil/registry: " + e.Registry + " already initialized"
}

// Load parses yamlBytes into the config registry. Calling it a second time
// is a fatal programming error.
func (r *ConfigRegistry) Load(yamlBytes []byte) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.init {
		return ErrAlreadyInitialized{Registry: "config"}
	}

	var parsed map[string]interface{}
	if err := yaml.Unmarshal(yamlBytes, &parsed); err != nil {
		return err
	}
	r.data = parsed
	r.init = true
	return nil
}

// Get returns the raw value at a dot-separated path ("session.cookie_name"),
// walking nested maps, or nil if any segment is missing or not a map.
func (r *ConfigRegistry) Get(path string) interface{} {
	var cur interface{} = r.data
	for _, seg := range strings.Split(path, ".") {
		m, ok := cur.(map[string]interface{})
		if !ok {
			return nil
		}
		cur, ok = m[seg]
		if !ok {
			return nil
		}
	}
	return cur
}

// GetString returns the value at path as a string, or "" if absent or not
// string-shaped.
func (r *ConfigRegistry) GetString(path string) string {
	v := r.Get(path)
	s, _ := v.(string)
	return s
}

// GetInt returns the value at path as an int, converting from YAML's
// native int/float64 decode types, or 0 if absent.
func (r *ConfigRegistry) GetInt(path string) int {
	switch v := r.Get(path).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	case string:
		n, err := strconv.Atoi(v)
		if err == nil {
			return n
		}
	}
	return 0
}

// GetBool returns the value at path as a bool, or false if absent.
func (r *ConfigRegistry) GetBool(path string) bool {
	b, _ := r.Get(path).(bool)
	return b
}
