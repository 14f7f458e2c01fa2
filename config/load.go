package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"todolist/internal/errors"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/slighter12/go-lib/database/postgres"
)

// Load decodes the first <name>.yaml found in dirs into a T and lets
// environment variables override any key: DATABASE_SQLITEPATH sets
// database.sqlitePath.
func Load[T any](name string, dirs ...string) (*T, error) {
	path, err := findFile(name+".yaml", dirs)
	if err != nil {
		return nil, err
	}

	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	fromFile := k.Raw()
	envOverrides := env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, fromFile), value
		},
	})
	if err := k.Load(envOverrides, nil); err != nil {
		return nil, errors.Wrap(err, "read environment")
	}

	cfg := new(T)
	decoder := &mapstructure.DecoderConfig{
		Result:           cfg,
		WeaklyTypedInput: true,
		DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
		MatchName:        strings.EqualFold,
	}
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{DecoderConfig: decoder}); err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

func findFile(base string, dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, base)
		if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", base, strings.Join(dirs, ", "))
}

// canonicalizeEnvKey turns an env name into a koanf path, borrowing the
// spelling of keys already present in the file so camelCase keys match:
// POSTGRES_SSLMODE becomes postgres.sslMode. Unknown segments stay lower case.
func canonicalizeEnvKey(rawKey string, known map[string]any) string {
	var path []string

	for _, segment := range strings.Split(strings.ToLower(rawKey), "_") {
		if segment == "" {
			continue
		}

		key, child := lookupKey(known, segment)
		path = append(path, key)
		known = child
	}

	return strings.Join(path, ".")
}

// lookupKey finds segment among the keys of level ignoring case and any
// non-alphanumeric characters. It returns segment itself when nothing matches.
func lookupKey(level map[string]any, segment string) (string, map[string]any) {
	for key, value := range level {
		if alnumLower(key) == segment {
			child, _ := value.(map[string]any)

			return key, child
		}
	}

	return segment, nil
}

func alnumLower(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		case r >= 'A' && r <= 'Z':
			return r + ('a' - 'A')
		default:
			return -1
		}
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... and stops at the first index without host and port.
func replicasFromEnv(getenv func(string) string) []postgres.ConnectionConfig {
	var replicas []postgres.ConnectionConfig

	for i := 0; ; i++ {
		prefix := "POSTGRES_REPLICAS_" + strconv.Itoa(i) + "_"

		host, port := getenv(prefix+"HOST"), getenv(prefix+"PORT")
		if host == "" || port == "" {
			return replicas
		}

		replicas = append(replicas, postgres.ConnectionConfig{
			Host:     host,
			Port:     port,
			UserName: getenv(prefix + "USERNAME"),
			Password: getenv(prefix + "PASSWORD"),
		})
	}
}
