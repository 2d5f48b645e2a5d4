package recorddb_test

import (
	"os"
	"testing"
	"time"

	"github.com/PhaseLab/ThermoConvert/config"
	"github.com/PhaseLab/ThermoConvert/recorddb"
)

// Needs a live MS SQL Server; set THERMOCONV_RECORDDB_ADDR to run.
func TestInsertConversions(t *testing.T) {
	addr := os.Getenv("THERMOCONV_RECORDDB_ADDR")
	if addr == "" {
		t.Skip("THERMOCONV_RECORDDB_ADDR not set")
	}

	conf := &config.Config{}
	conf.RecordDatabase.Address = addr
	conf.RecordDatabase.User = os.Getenv("THERMOCONV_RECORDDB_USER")
	conf.RecordDatabase.Password = os.Getenv("THERMOCONV_RECORDDB_PASSWORD")
	conf.RecordDatabase.Database = "ThermoConvert"
	conf.RecordDatabase.Table = "Conversions"

	rdb := recorddb.SetupRecordDB(conf)
	defer rdb.Stop()

	err := rdb.InsertConversions([]recorddb.Conversion{{
		TimeStamp: time.Now(),
		Element:   "C",
		FromUnit:  "erg/g",
		ToUnit:    "eV/atom",
		Value:     1,
		Result:    1.244867e-11,
	}})
	if err != nil {
		t.Fatal(err)
	}
}
