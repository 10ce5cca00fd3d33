package enbx2html

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"enbx2html/report"
)

func TestInputStem(t *testing.T) {
	assert.Equal(t, "lesson", inputStem("lesson.enbx"))
	assert.Equal(t, "lesson", inputStem(filepath.Join("a", "b", "lesson.enbx")))
	assert.Equal(t, "pkg", inputStem("pkg"))
	assert.Equal(t, "pkg", inputStem("pkg"+string(filepath.Separator)))
}

func TestDefaultOutputDir(t *testing.T) {
	assert.Equal(t, filepath.Join("a", "b", "lesson_html"),
		defaultOutputDir(filepath.Join("a", "b", "lesson.enbx")))
	assert.Equal(t, "lesson_html", defaultOutputDir("lesson.enbx"))
}

func TestFormatDim(t *testing.T) {
	assert.Equal(t, "1280", formatDim(1280))
	assert.Equal(t, "720.5", formatDim(720.5))
}

func TestChainImmutability(t *testing.T) {
	base := Open("lesson.enbx")
	withOut := base.OutputDir("custom")
	withTitle := base.Title("T")

	assert.Empty(t, base.options.outputDir)
	assert.Empty(t, base.options.title)
	assert.Equal(t, "custom", withOut.options.outputDir)
	assert.Empty(t, withOut.options.title)
	assert.Equal(t, "T", withTitle.options.title)
}

func TestParallelFloor(t *testing.T) {
	c := Open("x").Parallel(0)
	assert.Equal(t, 1, c.options.parallelism)

	c = Open("x").Parallel(8)
	assert.Equal(t, 8, c.options.parallelism)
}

func TestWithReporterNil(t *testing.T) {
	c := Open("x").WithReporter(nil)
	assert.Equal(t, report.Discard{}, c.options.reporter)
}

func TestPageTitle(t *testing.T) {
	assert.Equal(t, "lesson", Open("lesson.enbx").pageTitle())
	assert.Equal(t, "Custom", Open("lesson.enbx").Title("Custom").pageTitle())
}
