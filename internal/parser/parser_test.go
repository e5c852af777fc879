package parser_test

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"voice-worklog/internal/parser"
	"voice-worklog/pkg/datemath"
)

func TestResolveNumber(t *testing.T) {
	tests := []struct {
		token  string
		want   int
		wantOK bool
	}{
		{token: "nove", want: 9, wantOK: true},
		{token: "Quinze", want: 15, wantOK: true},
		{token: "vinte", want: 20, wantOK: true},
		{token: "cinquenta", want: 50, wantOK: true},
		{token: "uma", want: 1, wantOK: true},
		{token: "duas", want: 2, wantOK: true},
		{token: "TRÊS", want: 3, wantOK: true},
		{token: "42", want: 42, wantOK: true},
		{token: "zero", wantOK: false},
		{token: "vinte e um", wantOK: false},
	}
	for _, tt := range tests {
		t.Run(tt.token, func(t *testing.T) {
			got, ok := parser.ResolveNumber(tt.token)
			if ok != tt.wantOK || got != tt.want {
				t.Errorf("ResolveNumber(%q) = %d, %v, want %d, %v", tt.token, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestParseProject(t *testing.T) {
	p := parser.New(nil)

	tests := []struct {
		name string
		text string
		want string
	}{
		{name: "spaced alias", text: "das 9h às 10h no projeto tj rj", want: "TJRJ"},
		{name: "uppercase alias", text: "projeto TJRJ em login", want: "TJRJ"},
		{name: "no projeto lowercase", text: "em login no projeto tjrj", want: "TJRJ"},
		{name: "sompo short", text: "do projeto Sompo", want: "SEGURADORA SOMPO"},
		{name: "sompo full", text: "na projeto seguradora sompo", want: "SEGURADORA SOMPO"},
		{name: "delivery", text: "projeto delivery", want: "DELIVERY"},
		{name: "generic token", text: "corrigindo bug no projeto Alpha", want: "ALPHA"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.text)
			if res.Project == nil || *res.Project != tt.want {
				t.Errorf("Project = %v, want %q", res.Project, tt.want)
			}
		})
	}

	t.Run("absent", func(t *testing.T) {
		if res := p.Parse("das 9h às 10h em login"); res.Project != nil {
			t.Errorf("Project = %q, want nil", *res.Project)
		}
	})
}

func TestParseDescriptionAndKeywords(t *testing.T) {
	p := parser.New(nil)

	tests := []struct {
		name            string
		text            string
		wantKeywords    string
		wantDescription string
	}{
		{
			name:            "independent anchors",
			text:            "em autenticação com a descrição ajustes de token",
			wantKeywords:    "autenticação",
			wantDescription: "ajustes de token",
		},
		{
			name:            "case preserved",
			text:            "trabalhei das 9h às 11h em Revisão De PR",
			wantKeywords:    "Revisão De PR",
			wantDescription: "Revisão De PR",
		},
		{
			name:            "description marker alone",
			text:            "com a descrição Revisão De PR no projeto TJRJ",
			wantKeywords:    "",
			wantDescription: "Revisão De PR",
		},
		{
			name:            "search anchor stops at project and drops clock",
			text:            "em login no projeto TJRJ das 9h às 10h",
			wantKeywords:    "login",
			wantDescription: "login",
		},
		{
			name:            "search anchor stops at sentence mark",
			text:            "em login social. das 9h às 10h",
			wantKeywords:    "login social",
			wantDescription: "login social",
		},
		{
			name:            "whitespace collapsed",
			text:            "em   tela   de  login",
			wantKeywords:    "tela de login",
			wantDescription: "tela de login",
		},
		{
			name:            "verb anchor",
			text:            "das 9h às 10h desenvolvendo tela de login no projeto TJRJ",
			wantKeywords:    "tela de login",
			wantDescription: "tela de login",
		},
		{
			name:            "preposition anchor",
			text:            "reunião sobre arquitetura do sistema",
			wantKeywords:    "arquitetura do sistema",
			wantDescription: "arquitetura do sistema",
		},
		{
			name:            "locative anchor",
			text:            "trabalhei na migração de dados",
			wantKeywords:    "migração de dados",
			wantDescription: "migração de dados",
		},
		{
			name:            "reserved marker is not a preposition phrase",
			text:            "com a descrição",
			wantKeywords:    "",
			wantDescription: "",
		},
		{
			name:            "short phrase falls through to dictionary",
			text:            "para ui",
			wantKeywords:    "ui",
			wantDescription: "ui",
		},
		{
			name:            "dictionary keywords",
			text:            "das 9h às 10h bug e deploy da API e bug",
			wantKeywords:    "bug, deploy, api",
			wantDescription: "bug, deploy, api",
		},
		{
			name:            "multi word keyword wins",
			text:            "gestão de projetos e reunião",
			wantKeywords:    "gestão de projetos, reunião",
			wantDescription: "gestão de projetos, reunião",
		},
		{
			name:            "nothing to extract",
			text:            "bom dia",
			wantKeywords:    "",
			wantDescription: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := p.Parse(tt.text)
			if res.SearchKeywords != tt.wantKeywords {
				t.Errorf("SearchKeywords = %q, want %q", res.SearchKeywords, tt.wantKeywords)
			}
			if res.Description != tt.wantDescription {
				t.Errorf("Description = %q, want %q", res.Description, tt.wantDescription)
			}
		})
	}
}

func TestContainsWord(t *testing.T) {
	tests := []struct {
		text string
		word string
		want bool
	}{
		{text: "ajuste rápido", word: "api", want: false},
		{text: "deploy rapido", word: "api", want: false},
		{text: "nova API de login", word: "api", want: true},
		{text: "erro na api.", word: "api", want: true},
		{text: "login está quebrado", word: "está", want: true},
		{text: "autenticação", word: "autenticação", want: true},
		{text: "autenticações", word: "autenticação", want: false},
		{text: "anything", word: "  ", want: false},
	}
	for _, tt := range tests {
		t.Run(tt.text+"/"+tt.word, func(t *testing.T) {
			if got := parser.ContainsWord(tt.text, tt.word); got != tt.want {
				t.Errorf("ContainsWord(%q, %q) = %v, want %v", tt.text, tt.word, got, tt.want)
			}
		})
	}
}

func TestParseIdempotent(t *testing.T) {
	p := parser.New(nil)
	text := "das 9h30 até 11h em login no projeto TJRJ com a descrição Ajuste de sessão"

	first := p.Parse(text)
	second := p.Parse(text)
	if !reflect.DeepEqual(first, second) {
		t.Errorf("Parse is not idempotent:\n%+v\n%+v", first, second)
	}
	if first.OriginalText != text {
		t.Errorf("OriginalText = %q, want %q", first.OriginalText, text)
	}
}

func TestCustomDictionary(t *testing.T) {
	dict, err := parser.NewDictionary(parser.DictionaryConfig{
		Projects: []parser.ProjectAlias{{Code: "ACME CORP", Pattern: `a[ck]me`}},
		Keywords: []string{"kubernetes"},
	})
	if err != nil {
		t.Fatalf("NewDictionary() error = %v", err)
	}
	p := parser.New(dict)

	res := p.Parse("das 9h às 10h kubernetes no projeto akme")
	if res.Project == nil || *res.Project != "ACME CORP" {
		t.Errorf("Project = %v, want ACME CORP", res.Project)
	}
	if res.SearchKeywords != "kubernetes" {
		t.Errorf("SearchKeywords = %q, want kubernetes", res.SearchKeywords)
	}

	res = p.Parse("bug no projeto tjrj")
	if res.Project == nil || *res.Project != "TJRJ" {
		t.Errorf("Project = %v, want uppercase fallback TJRJ", res.Project)
	}
}

func TestNewDictionaryErrors(t *testing.T) {
	tests := []struct {
		name string
		cfg  parser.DictionaryConfig
	}{
		{name: "empty code", cfg: parser.DictionaryConfig{Projects: []parser.ProjectAlias{{Pattern: "x"}}}},
		{name: "bad pattern", cfg: parser.DictionaryConfig{Projects: []parser.ProjectAlias{{Code: "X", Pattern: "("}}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := parser.NewDictionary(tt.cfg); err == nil {
				t.Error("expected error")
			}
		})
	}
}

func TestLoadDictionary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dictionary.yaml")
	yaml := `
projects:
  - code: PORTAL
    pattern: 'portal(?:\s+web)?'
activity_verbs:
  - codando
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatal(err)
	}

	dict, err := parser.LoadDictionary(path)
	if err != nil {
		t.Fatalf("LoadDictionary() error = %v", err)
	}
	res := parser.New(dict).Parse("codando tela inicial do projeto portal web")
	if res.Project == nil || *res.Project != "PORTAL" {
		t.Errorf("Project = %v, want PORTAL", res.Project)
	}
	if res.Description != "tela inicial" {
		t.Errorf("Description = %q, want %q", res.Description, "tela inicial")
	}

	if _, err := parser.LoadDictionary(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParseLegacyDates(t *testing.T) {
	dates, err := datemath.NewParser("America/Sao_Paulo")
	if err != nil {
		t.Fatal(err)
	}
	loc := dates.Location()
	now := func() time.Time { return time.Date(2024, 5, 10, 15, 0, 0, 0, loc) }

	p := parser.New(nil, parser.WithLegacyDates(dates, now))
	res := p.Parse("ontem das 9h às 10h em login")
	want := time.Date(2024, 5, 9, 0, 0, 0, 0, loc)
	if res.Date == nil || !res.Date.Equal(want) {
		t.Errorf("Date = %v, want %v", res.Date, want)
	}

	if res := parser.New(nil).Parse("ontem das 9h às 10h"); res.Date != nil {
		t.Errorf("Date = %v, want nil without legacy mode", res.Date)
	}
}
