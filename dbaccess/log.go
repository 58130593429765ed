package dbaccess

import (
	"github.com/dogesuite/doged/logs"
)

var log, _ = logs.Get(logs.SubsystemTags.DBAC)
