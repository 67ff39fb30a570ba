package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jfmengels/elm-lint/pkg/lint"
	"github.com/jfmengels/elm-lint/pkg/parser/reference"
	"github.com/jfmengels/elm-lint/pkg/project"
	"github.com/jfmengels/elm-lint/pkg/rules"
)

func lintSource(t *testing.T, source string) []lint.Diagnostic {
	t.Helper()
	return lint.Lint(reference.Parse, reference.PostProcess, rules.All(), project.New(nil),
		lint.File{Path: "A.elm", Source: source})
}

func TestAll_NoOpOnConformingSource(t *testing.T) {
	source := "module A exposing (a)\n" +
		"import Html exposing (Html)\n" +
		"a : Html msg\n" +
		"a =\n" +
		"    Html.text \"hi\"\n"

	diags := lintSource(t, source)

	assert.Empty(t, diags)
}

func TestAll_ForbiddenCallDetection(t *testing.T) {
	source := "module A exposing (a)\n" +
		"a =\n" +
		"    let\n" +
		"        x = 1\n" +
		"    in\n" +
		"    Debug.log \"x\" x\n"

	diags := lintSource(t, source)

	var debugDiags []lint.Diagnostic
	for _, d := range diags {
		if d.RuleName() == "NoDebug" {
			debugDiags = append(debugDiags, d)
		}
	}
	require.Len(t, debugDiags, 1)
	moduleName, ok := debugDiags[0].ModuleName()
	assert.True(t, ok)
	assert.Equal(t, "A", moduleName)
	assert.False(t, debugDiags[0].HasFixes())
}

func TestAll_ParseFailurePath(t *testing.T) {
	source := "module A exposing (a)\na = (\n"

	diags := lintSource(t, source)

	require.Len(t, diags, 1)
	assert.Equal(t, lint.ParsingErrorRuleName, diags[0].RuleName())
	_, ok := diags[0].ModuleName()
	assert.False(t, ok)
}

func TestNoUnusedVariables_FlagsUnreferencedLetBinding(t *testing.T) {
	source := "module A exposing (a)\n" +
		"a =\n" +
		"    let\n" +
		"        x = 1\n" +
		"        y = 2\n" +
		"    in\n" +
		"    x\n"

	diags := lintSource(t, source)

	var unused []lint.Diagnostic
	for _, d := range diags {
		if d.RuleName() == "NoUnusedVariables" {
			unused = append(unused, d)
		}
	}
	require.Len(t, unused, 1)
	assert.Contains(t, unused[0].Message(), "`y`")
}

func TestNoUnusedVariables_AllowsMutuallyUsedBindings(t *testing.T) {
	source := "module A exposing (a)\n" +
		"a =\n" +
		"    let\n" +
		"        x = 1\n" +
		"        y = x\n" +
		"    in\n" +
		"    y\n"

	diags := lintSource(t, source)

	for _, d := range diags {
		assert.NotEqual(t, "NoUnusedVariables", d.RuleName())
	}
}

func TestNoUnusedVariables_ReportsMultipleUnusedInSourceOrder(t *testing.T) {
	source := "module A exposing (a)\n" +
		"a =\n" +
		"    let\n" +
		"        z = 1\n" +
		"        y = 2\n" +
		"        x = 3\n" +
		"    in\n" +
		"    0\n"

	diags := lintSource(t, source)

	var unused []lint.Diagnostic
	for _, d := range diags {
		if d.RuleName() == "NoUnusedVariables" {
			unused = append(unused, d)
		}
	}
	require.Len(t, unused, 3)
	assert.Contains(t, unused[0].Message(), "`z`")
	assert.Contains(t, unused[1].Message(), "`y`")
	assert.Contains(t, unused[2].Message(), "`x`")
}

func TestNoUnusedImports_FlagsImportNeverQualified(t *testing.T) {
	source := "module A exposing (a)\n" +
		"import Html\n" +
		"import Debug\n" +
		"a =\n" +
		"    Debug.log \"x\" 1\n"

	diags := lintSource(t, source)

	var unusedImports []lint.Diagnostic
	for _, d := range diags {
		if d.RuleName() == "NoUnusedImports" {
			unusedImports = append(unusedImports, d)
		}
	}
	require.Len(t, unusedImports, 1)
	assert.Contains(t, unusedImports[0].Message(), "Html")
}

func TestNoUnusedImports_CreditsAliasedQualifiedUsage(t *testing.T) {
	source := "module A exposing (a)\n" +
		"import Html.Attributes as Attr\n" +
		"a =\n" +
		"    Attr.class \"x\"\n"

	diags := lintSource(t, source)

	for _, d := range diags {
		assert.NotEqual(t, "NoUnusedImports", d.RuleName())
	}
}
