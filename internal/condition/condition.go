package condition

import (
	"sync"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/pkg/errors"
)

// Condition is a boolean expression evaluated against a visitor
// environment, ie. "user != nil && !isOwner".
type Condition struct {
	script  string
	program *vm.Program

	compileOnce sync.Once
	compileErr  error
}

func (c *Condition) Eval(env map[string]any) (bool, error) {
	program, err := c.getProgram()
	if err != nil {
		return false, errors.WithStack(err)
	}

	result, err := expr.Run(program, env)
	if err != nil {
		return false, errors.WithStack(err)
	}

	matched, ok := result.(bool)
	if !ok {
		return false, errors.Errorf("unexpected condition '%s' result type '%T', expected boolean", c.script, result)
	}

	return matched, nil
}

// Compile reports syntax errors of the condition without evaluating it.
func (c *Condition) Compile() error {
	_, err := c.getProgram()
	return err
}

func (c *Condition) getProgram() (*vm.Program, error) {
	c.compileOnce.Do(func() {
		program, err := expr.Compile(c.script, expr.AsBool())
		if err != nil {
			c.compileErr = errors.Wrapf(err, "could not compile condition '%s'", c.script)
			return
		}

		c.program = program
	})
	if c.compileErr != nil {
		return nil, errors.WithStack(c.compileErr)
	}

	return c.program, nil
}

func (c *Condition) String() string {
	return c.script
}

func New(script string) *Condition {
	return &Condition{script: script}
}
