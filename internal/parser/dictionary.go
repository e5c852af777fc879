package parser

import (
	"errors"
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProjectAlias maps a spoken project phrasing to its canonical code.
// Pattern is a regexp fragment matched case-insensitively after "projeto".
type ProjectAlias struct {
	Code    string `yaml:"code"`
	Pattern string `yaml:"pattern"`
}

// DictionaryConfig is the editable form of a Dictionary.
type DictionaryConfig struct {
	Projects      []ProjectAlias `yaml:"projects"`
	Keywords      []string       `yaml:"keywords"`
	ActivityVerbs []string       `yaml:"activity_verbs"`
}

// DefaultDictionaryConfig returns the built-in aliases, technical keywords
// and activity verbs.
func DefaultDictionaryConfig() DictionaryConfig {
	return DictionaryConfig{
		Projects: []ProjectAlias{
			{Code: "TJRJ", Pattern: `tj\s*rj`},
			{Code: "SEGURADORA SOMPO", Pattern: `(?:seguradora\s+)?sompo`},
			{Code: "DELIVERY", Pattern: `delivery`},
		},
		Keywords: []string{
			"frontend", "backend", "fullstack", "gestão de projetos", "gestão",
			"análise", "desenvolvimento", "teste", "bug", "feature", "correção",
			"melhoria", "refatoração", "documentação", "reunião", "reuniões",
			"planejamento", "revisão", "deploy", "configuração", "ui", "ux", "api",
			"database", "banco", "dados", "código", "programação", "javascript",
			"python", "java", "react", "vue", "angular", "diárias", "daily",
		},
		ActivityVerbs: []string{
			"desenvolvendo", "fazendo", "trabalhando", "criando", "implementando",
			"corrigindo", "testando", "analisando", "documentando", "reunindo",
			"estudando",
		},
	}
}

type projectAlias struct {
	code string
	// re matches the whole "projeto <alias>" phrase
	re *regexp.Regexp
	// token matches a bare captured token against the alias
	token *regexp.Regexp
}

// Dictionary is the compiled, read-only vocabulary used by the Parser.
// It is safe for concurrent use.
type Dictionary struct {
	projects  []projectAlias
	keywordRe *regexp.Regexp
	verbRe    *regexp.Regexp
}

// NewDictionary compiles cfg. Empty sections fall back to the defaults.
func NewDictionary(cfg DictionaryConfig) (*Dictionary, error) {
	def := DefaultDictionaryConfig()
	if len(cfg.Projects) == 0 {
		cfg.Projects = def.Projects
	}
	if len(cfg.Keywords) == 0 {
		cfg.Keywords = def.Keywords
	}
	if len(cfg.ActivityVerbs) == 0 {
		cfg.ActivityVerbs = def.ActivityVerbs
	}

	d := &Dictionary{}
	for _, a := range cfg.Projects {
		if strings.TrimSpace(a.Code) == "" {
			return nil, errors.New("parser: project alias code is required")
		}
		re, err := regexp.Compile(`(?i)projeto\s+(?:` + a.Pattern + `)` + wordEnd)
		if err != nil {
			return nil, fmt.Errorf("parser: project alias %q: %w", a.Code, err)
		}
		d.projects = append(d.projects, projectAlias{
			code:  a.Code,
			re:    re,
			token: regexp.MustCompile(`(?i)^(?:` + a.Pattern + `)$`),
		})
	}

	d.keywordRe = regexp.MustCompile(`(?i)(?:` + alternation(cfg.Keywords, true) + `)`)
	verbs, err := regexp.Compile(`(?i)` + wordStart + `(?:` + alternation(cfg.ActivityVerbs, false) + `)\s+` + phraseCapture)
	if err != nil {
		return nil, fmt.Errorf("parser: activity verbs: %w", err)
	}
	d.verbRe = verbs
	return d, nil
}

var defaultDictionary = func() *Dictionary {
	d, err := NewDictionary(DefaultDictionaryConfig())
	if err != nil {
		panic(err)
	}
	return d
}()

// DefaultDictionary returns the shared built-in Dictionary.
func DefaultDictionary() *Dictionary {
	return defaultDictionary
}

// LoadDictionary reads a YAML DictionaryConfig from path.
func LoadDictionary(path string) (*Dictionary, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("parser: read dictionary: %w", err)
	}
	var cfg DictionaryConfig
	if err := yaml.Unmarshal(b, &cfg); err != nil {
		return nil, fmt.Errorf("parser: decode dictionary %s: %w", path, err)
	}
	return NewDictionary(cfg)
}

// alternation quotes words into a regexp alternation, longest first.
// Inner spaces match any whitespace run when spaced is set.
func alternation(words []string, spaced bool) string {
	sorted := make([]string, 0, len(words))
	for _, w := range words {
		if w = strings.TrimSpace(strings.ToLower(w)); w != "" {
			sorted = append(sorted, w)
		}
	}
	sort.SliceStable(sorted, func(i, j int) bool { return len(sorted[i]) > len(sorted[j]) })

	parts := make([]string, len(sorted))
	for i, w := range sorted {
		q := regexp.QuoteMeta(w)
		if spaced {
			q = strings.Join(strings.Fields(q), `\s+`)
		}
		parts[i] = q
	}
	return strings.Join(parts, "|")
}
