package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const configName = "config.yaml"

// searchDirs covers running from the repo root, a cmd/<binary> directory and package tests.
var searchDirs = []string{".", "config", "../config", "../../config"}

// New loads config.yaml, overlays the environment (and .env when present) and fills defaults.
func New() (*Config, error) {
	_ = godotenv.Load()

	path, err := findConfigFile(searchDirs)
	if err != nil {
		return nil, err
	}

	cfg, err := load(path)
	if err != nil {
		return nil, err
	}
	applyDefaults(cfg)

	if cfg.Postgres != nil {
		cfg.Postgres.Replicas = replicasFromEnv(os.Getenv)
	}

	return cfg, nil
}

func findConfigFile(dirs []string) (string, error) {
	for _, dir := range dirs {
		candidate := filepath.Join(dir, configName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}
	}

	return "", errors.Errorf("%s not found in %s", configName, strings.Join(dirs, ", "))
}

// load decodes the YAML file at path with the process environment applied on top. Env names are
// mapped onto the YAML key tree so HTTP_MAXREQUESTBODYSIZE and
// HTTP_MAX_REQUEST_BODY_SIZE both override http.maxRequestBodySize.
func load(path string) (*Config, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s", path)
	}

	tree := k.Raw()
	err := k.Load(env.Provider(".", env.Opt{
		TransformFunc: func(key, value string) (string, any) {
			return canonicalizeEnvKey(key, tree), value
		},
	}), nil)
	if err != nil {
		return nil, errors.Wrap(err, "apply environment overrides")
	}

	cfg := new(Config)
	err = k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook:       mapstructure.StringToTimeDurationHookFunc(),
			MatchName:        strings.EqualFold,
		},
	})
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}

	return cfg, nil
}

// canonicalizeEnvKey turns an env name into a dotted koanf path, reusing the
// spelling of keys that already exist. Underscore-separated words are joined
// greedily when together they name one camelCase key.
func canonicalizeEnvKey(rawKey string, tree map[string]any) string {
	var words []string
	for _, w := range strings.Split(strings.ToLower(rawKey), "_") {
		if w != "" {
			words = append(words, w)
		}
	}

	path := make([]string, 0, len(words))
	node := tree
	for i := 0; i < len(words); {
		key, child, used := matchKey(node, words[i:])
		if used == 0 {
			path = append(path, words[i])
			node = nil
			i++

			continue
		}
		path = append(path, key)
		node = child
		i += used
	}

	return strings.Join(path, ".")
}

// matchKey finds the existing key spelled by the longest prefix of words and
// reports how many words it consumed.
func matchKey(node map[string]any, words []string) (string, map[string]any, int) {
	if len(node) == 0 {
		return "", nil, 0
	}

	for n := len(words); n > 0; n-- {
		want := strings.Join(words[:n], "")
		for key, value := range node {
			if normalizeToken(key) == want {
				child, _ := value.(map[string]any)

				return key, child, n
			}
		}
	}

	return "", nil, 0
}

func normalizeToken(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return unicode.ToLower(r)
		}

		return -1
	}, s)
}

// replicasFromEnv reads POSTGRES_REPLICAS_<n>_{HOST,PORT,USERNAME,PASSWORD}
// for n = 0, 1, ... until a host or port is missing.
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
