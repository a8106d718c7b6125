package turtle

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// Script errors.
var (
	ErrEmptyScript   = errors.New("script has no steps")
	ErrUnknownAction = errors.New("unknown action")
	ErrScriptDepth   = errors.New("repeat nesting too deep")
	ErrScriptTooLong = errors.New("script runs too many steps")
)

// maxScriptDepth bounds repeat nesting.
const maxScriptDepth = 32

// maxScriptSteps bounds the steps one Run executes after repeat expansion.
const maxScriptSteps = 1_000_000

// scriptStep is one action in a script. Which fields matter depends on Action.
type scriptStep struct {
	Action string       `json:"action" yaml:"action"`
	Value  float64      `json:"value,omitempty" yaml:"value,omitempty"`
	X      float64      `json:"x,omitempty" yaml:"x,omitempty"`
	Y      float64      `json:"y,omitempty" yaml:"y,omitempty"`
	Color  string       `json:"color,omitempty" yaml:"color,omitempty"`
	Fill   string       `json:"fill,omitempty" yaml:"fill,omitempty"`
	Text   string       `json:"text,omitempty" yaml:"text,omitempty"`
	Extent float64      `json:"extent,omitempty" yaml:"extent,omitempty"`
	Count  int          `json:"count,omitempty" yaml:"count,omitempty"`
	Steps  []scriptStep `json:"steps,omitempty" yaml:"steps,omitempty"`
}

// scriptFile is the top-level structure of a script document.
type scriptFile struct {
	Background string       `json:"background,omitempty" yaml:"background,omitempty"`
	Steps      []scriptStep `json:"steps" yaml:"steps"`
}

// Script is a parsed turtle program: a list of cursor actions, optionally
// grouped by repeat blocks. Load one with LoadScript, LoadScriptYAML or
// LoadScriptFile and execute it with Run.
//
//	{"steps": [
//		{"action": "color", "color": "red", "fill": "gold"},
//		{"action": "begin_fill"},
//		{"action": "repeat", "count": 5, "steps": [
//			{"action": "forward", "value": 100},
//			{"action": "right", "value": 144}
//		]},
//		{"action": "end_fill"}
//	]}
type Script struct {
	background string
	steps      []scriptStep
}

// LoadScript parses a JSON script.
func LoadScript(data []byte) (*Script, error) {
	var f scriptFile
	if err := json.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return newScript(f)
}

// LoadScriptYAML parses a YAML script with the same fields as the JSON form.
func LoadScriptYAML(data []byte) (*Script, error) {
	var f scriptFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("parse script: %w", err)
	}
	return newScript(f)
}

// LoadScriptFile reads a script from disk, choosing YAML for .yaml and .yml
// files and JSON otherwise.
func LoadScriptFile(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return LoadScriptYAML(data)
	default:
		return LoadScript(data)
	}
}

func newScript(f scriptFile) (*Script, error) {
	if len(f.Steps) == 0 {
		return nil, fmt.Errorf("parse script: %w", ErrEmptyScript)
	}
	return &Script{background: f.Background, steps: f.Steps}, nil
}

// Len returns the number of top-level steps.
func (s *Script) Len() int {
	return len(s.steps)
}

// Run executes the script on c. Steps before a failing step have already
// drawn; the canvas is append-only, so nothing is rolled back.
func (s *Script) Run(c *Cursor) error {
	if s.background != "" {
		bg, err := ParseColor(s.background)
		if err != nil {
			return fmt.Errorf("script background: %w", err)
		}
		c.Canvas().SetBackground(bg)
	}
	budget := maxScriptSteps
	return runSteps(c, s.steps, 0, &budget)
}

// runSteps executes steps, charging each one against budget.
func runSteps(c *Cursor, steps []scriptStep, depth int, budget *int) error {
	if depth > maxScriptDepth {
		return ErrScriptDepth
	}
	for i := range steps {
		if *budget--; *budget < 0 {
			return ErrScriptTooLong
		}
		if err := runStep(c, &steps[i], depth, budget); err != nil {
			return fmt.Errorf("step %d (%s): %w", i+1, steps[i].Action, err)
		}
	}
	return nil
}

func runStep(c *Cursor, st *scriptStep, depth int, budget *int) error {
	switch strings.ToLower(st.Action) {
	case "forward", "fd":
		c.Forward(st.Value)
	case "backward", "back", "bk":
		c.Backward(st.Value)
	case "left", "lt":
		c.Left(st.Value)
	case "right", "rt":
		c.Right(st.Value)
	case "goto", "setpos", "setxy":
		c.Goto(st.X, st.Y)
	case "safe_goto", "jump":
		c.SafeGoto(st.X, st.Y)
	case "setx":
		c.SetX(st.X)
	case "sety":
		c.SetY(st.Y)
	case "home":
		c.Home()
	case "heading", "setheading", "seth":
		c.SetHeading(st.Value)
	case "penup", "pu", "up":
		c.PenUp()
	case "pendown", "pd", "down":
		c.PenDown()
	case "width", "pensize":
		c.SetPenSize(st.Value)
	case "speed":
		c.Speed(int(st.Value))
	case "hide", "hideturtle", "ht":
		c.Hide()
	case "show", "showturtle", "st":
		c.Show()
	case "color":
		return applyColors(c, st.Color, st.Fill)
	case "pencolor":
		col, err := ParseColor(st.Color)
		if err != nil {
			return err
		}
		c.SetPenColor(col)
	case "fillcolor":
		col, err := ParseColor(st.Fill)
		if err != nil {
			return err
		}
		c.SetFillColor(col)
	case "logocolor", "setpc":
		c.SetPenColor(LogoColor(int(st.Value)))
	case "begin_fill":
		c.BeginFill()
	case "end_fill":
		c.EndFill()
	case "circle":
		c.Circle(st.Value, st.Extent, st.Count)
	case "label", "write":
		c.Label(st.Text)
	case "repeat":
		if len(st.Steps) == 0 {
			break
		}
		for range st.Count {
			if err := runSteps(c, st.Steps, depth+1, budget); err != nil {
				return err
			}
		}
	default:
		return ErrUnknownAction
	}
	return nil
}

// applyColors sets whichever of the pen and fill colors are non-empty. A
// color step with only "color" sets both, matching the common turtle idiom.
func applyColors(c *Cursor, pen, fill string) error {
	if pen != "" {
		col, err := ParseColor(pen)
		if err != nil {
			return err
		}
		c.SetPenColor(col)
		if fill == "" {
			c.SetFillColor(col)
		}
	}
	if fill != "" {
		col, err := ParseColor(fill)
		if err != nil {
			return err
		}
		c.SetFillColor(col)
	}
	return nil
}
