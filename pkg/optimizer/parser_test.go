package optimizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimizer_parseLine(t *testing.T) {
	o := New()

	tests := []struct {
		name          string
		line          string
		wantOK        bool
		wantSource    string
		wantDefault   string
		wantNamespace string
		wantNamed     []NamedBinding
	}{
		{
			name:        "default import",
			line:        `import utils from "@/utils/utils";`,
			wantOK:      true,
			wantSource:  "@/utils/utils",
			wantDefault: "utils",
		},
		{
			name:       "named imports",
			line:       `import { mapState, mapActions } from "vuex";`,
			wantOK:     true,
			wantSource: "vuex",
			wantNamed:  []NamedBinding{{Name: "mapState"}, {Name: "mapActions"}},
		},
		{
			name:       "named import with alias",
			line:       `import { a as b, c } from './mod';`,
			wantOK:     true,
			wantSource: "./mod",
			wantNamed:  []NamedBinding{{Name: "a", Alias: "b"}, {Name: "c"}},
		},
		{
			name:          "namespace import",
			line:          `import * as NS from "x";`,
			wantOK:        true,
			wantSource:    "x",
			wantNamespace: "NS",
		},
		{
			name:        "default and named imports",
			line:        `import React, { useState, useEffect } from 'react';`,
			wantOK:      true,
			wantSource:  "react",
			wantDefault: "React",
			wantNamed:   []NamedBinding{{Name: "useState"}, {Name: "useEffect"}},
		},
		{
			name:       "identifier containing as is not split",
			line:       `import { hasItem, basic as base } from "lib";`,
			wantOK:     true,
			wantSource: "lib",
			wantNamed:  []NamedBinding{{Name: "hasItem"}, {Name: "basic", Alias: "base"}},
		},
		{
			name:          "namespace alias containing as",
			line:          `import * as assets from "./assets";`,
			wantOK:        true,
			wantSource:    "./assets",
			wantNamespace: "assets",
		},
		{
			name:       "identifier containing from is not split",
			line:       `import { fromEvent } from 'rxjs';`,
			wantOK:     true,
			wantSource: "rxjs",
			wantNamed:  []NamedBinding{{Name: "fromEvent"}},
		},
		{
			name:       "repeated name keeps first alias",
			line:       `import { a as x, a as y } from "m";`,
			wantOK:     true,
			wantSource: "m",
			wantNamed:  []NamedBinding{{Name: "a", Alias: "x"}},
		},
		{
			name:        "unquoted source falls back to trimming",
			line:        `import x from lib;`,
			wantOK:      true,
			wantSource:  "lib",
			wantDefault: "x",
		},
		{
			name:        "single quote falls back to trimming",
			line:        `import x from 'lib;`,
			wantOK:      true,
			wantSource:  "lib",
			wantDefault: "x",
		},
		{
			name:   "side effect import without from",
			line:   `import './styles.css';`,
			wantOK: false,
		},
		{
			name:   "empty source",
			line:   `import x from '';`,
			wantOK: false,
		},
		{
			name:   "namespace without alias keyword",
			line:   `import * from "x";`,
			wantOK: false,
		},
		{
			name:          "default combined with namespace",
			line:          `import a, * as b from "x";`,
			wantOK:        true,
			wantSource:    "x",
			wantDefault:   "a",
			wantNamespace: "b",
		},
		{
			name:          "namespace followed by named imports",
			line:          `import * as NS, { a, b as c } from 'x';`,
			wantOK:        true,
			wantSource:    "x",
			wantNamespace: "NS",
			wantNamed:     []NamedBinding{{Name: "a"}, {Name: "b", Alias: "c"}},
		},
		{
			name:          "namespace followed by a single unbraced binding",
			line:          `import D, * as NS, a as z from 'x';`,
			wantOK:        true,
			wantSource:    "x",
			wantDefault:   "D",
			wantNamespace: "NS",
			wantNamed:     []NamedBinding{{Name: "a", Alias: "z"}},
		},
		{
			name:   "namespace followed by a dangling comma",
			line:   `import * as NS, from 'x';`,
			wantOK: false,
		},
		{
			name:   "empty clause",
			line:   `import from "x";`,
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			decl, ok := o.parseLine(tt.line, 3)
			req.Equal(tt.wantOK, ok, "parseLine(%q)", tt.line)
			if !tt.wantOK {
				return
			}
			req.Equal(tt.line, decl.OriginalText)
			req.Equal(3, decl.LineIndex)
			req.Equal(tt.wantSource, decl.Source)
			req.Equal(tt.wantDefault, decl.Default)
			req.Equal(tt.wantNamespace, decl.Namespace)
			req.Equal(tt.wantNamed, decl.Named)
		})
	}
}

func TestExtractSource(t *testing.T) {
	tests := []struct {
		region string
		want   string
	}{
		{`"vuex";`, "vuex"},
		{`'@/data/config.json';`, "@/data/config.json"},
		{`"./a" ;`, "./a"},
		{`lib;`, "lib"},
		{`lib; extra`, "lib"},
		{`'`, ""},
		{`;`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.region, func(t *testing.T) {
			require.Equal(t, tt.want, extractSource(tt.region))
		})
	}
}

func TestParseClause(t *testing.T) {
	req := require.New(t)

	decl, ok := parseClause("Default, { a }")
	req.True(ok)
	req.Equal("Default", decl.Default)
	req.Equal([]NamedBinding{{Name: "a"}}, decl.Named)

	decl, ok = parseClause("{ a }, rest")
	req.True(ok, "braces followed by text are a mixed clause")
	req.Empty(decl.Default)
	req.Equal([]NamedBinding{{Name: "a"}}, decl.Named)

	decl, ok = parseClause("{}")
	req.True(ok)
	req.Empty(decl.Named)

	_, ok = parseClause("} a {")
	req.False(ok)

	_, ok = parseClause("* as")
	req.False(ok)

	decl, ok = parseClause("*, { a }")
	req.True(ok, "a star without as falls through to the mixed rule")
	req.Equal("*", decl.Default)
	req.Equal([]NamedBinding{{Name: "a"}}, decl.Named)

	_, ok = parseClause("a * as b")
	req.False(ok, "default must be separated from the namespace by a comma")
}

func TestParseNamed(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		want  []NamedBinding
	}{
		{"empty", "", nil},
		{"whitespace", "   ", nil},
		{"trailing comma", "a, b,", []NamedBinding{{Name: "a"}, {Name: "b"}}},
		{"alias", "default as x", []NamedBinding{{Name: "default", Alias: "x"}}},
		{"export named as", "as", []NamedBinding{{Name: "as"}}},
		{"as renamed", "as as x", []NamedBinding{{Name: "as", Alias: "x"}}},
		{"class name", "Class", []NamedBinding{{Name: "Class"}}},
		{"missing alias", "a as", []NamedBinding{{Name: "a"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, parseNamed(tt.inner))
		})
	}
}
