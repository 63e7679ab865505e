package graph

import (
	"github.com/mandelsoft/logging"
)

var REALM = logging.DefineRealm("exprgraph/graph", "expression graph evaluation")

var log = logging.DynamicLogger(logging.DefaultContext(), REALM)
