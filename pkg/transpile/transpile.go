// Package transpile ties the parser and emitter together into a
// source-to-source pipeline from Zen to JavaScript.
package transpile

import (
	"github.com/zen-lang/zenjs/pkg/emitter"
	"github.com/zen-lang/zenjs/pkg/parser"
)

// Transpile converts Zen source text into JavaScript. A syntax error in the
// input is reported as a hard error; constructs the generator does not
// support degrade to placeholder comments in the output instead.
func Transpile(source string) (string, error) {
	prog, err := parser.Parse(source)
	if err != nil {
		return "", err
	}
	return emitter.New().EmitProgram(prog), nil
}
