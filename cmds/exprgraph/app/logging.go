package app

import (
	"fmt"

	"github.com/mandelsoft/logging"
	"github.com/mandelsoft/logging/logrusl"
	"github.com/mandelsoft/logging/logrusr"
)

var REALM = logging.DefineRealm("exprgraph/cli", "expression graph command line")

// configureLogging provides a new logging context for a command
// execution, so that repeated executions do not accumulate rules.
func configureLogging(level string) (logging.Context, error) {
	l, err := logging.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("invalid log level %q", level)
	}
	logcfg := logrusl.Human(true)
	lctx := logging.New(logrusr.New(logcfg.NewLogrus()))
	lctx.AddRule(logging.NewConditionRule(l, logging.NewRealmPrefix("exprgraph")))
	return lctx, nil
}
