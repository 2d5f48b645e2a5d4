package recorddb

import (
	"database/sql"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/PhaseLab/ThermoConvert/config"
	"github.com/PhaseLab/ThermoConvert/log"
	_ "github.com/denisenkom/go-mssqldb"
)

// Conversion is one audit row.
type Conversion struct {
	TimeStamp time.Time
	Element   string
	FromUnit  string
	ToUnit    string
	Value     float64
	Result    float64
}

type RecordDB struct {
	conf       *config.Config
	db         *sql.DB
	connString string
}

func SetupRecordDB(conf *config.Config) *RecordDB {
	c := &conf.RecordDatabase

	rdb := &RecordDB{
		conf:       conf,
		connString: fmt.Sprintf("server=%s;user id=%s;password=%s;database=%s", c.Address, c.User, c.Password, c.Database),
	}

	err := rdb.openDB()
	if err != nil {
		log.Println(err)
	}

	return rdb
}

func (rdb *RecordDB) Stop() error {
	if rdb.db == nil {
		return nil
	}

	if err := rdb.db.Close(); err != nil {
		return fmt.Errorf("failed closing record DB: %w", err)
	}

	return nil
}

func (rdb *RecordDB) openDB() error {
	db, err := sql.Open("mssql", rdb.connString)
	if err != nil {
		return fmt.Errorf("failed opening record DB: %w", err)
	}

	if err = db.Ping(); err != nil {
		return fmt.Errorf("failed pinging after opening record DB: %w", err)
	}

	rdb.db = db
	return nil
}

// Insert completed conversions into the audit table on the MS SQL Server.
func (rdb *RecordDB) InsertConversions(convs []Conversion) error {
	if rdb.db == nil {
		err := rdb.openDB()
		if err != nil {
			return err
		}
	}

	tx, err := rdb.db.Begin()
	if err != nil {
		return err
	}

	for i := range convs {
		c := &convs[i]

		qry := strings.Builder{}
		qry.WriteString(`INSERT INTO "`)
		qry.WriteString(rdb.conf.RecordDatabase.Table)
		qry.WriteString(`" ("DateTimeStamp", "Element", "FromUnit", "ToUnit", "Value", "Result") VALUES ('`)
		// DB column is DATETIME, with no timezone
		qry.WriteString(c.TimeStamp.Format("2006-01-02 15:04:05"))
		qry.WriteString("', '")
		qry.WriteString(c.Element)
		qry.WriteString("', '")
		qry.WriteString(c.FromUnit)
		qry.WriteString("', '")
		qry.WriteString(c.ToUnit)
		qry.WriteString("', ")
		qry.WriteString(strconv.FormatFloat(c.Value, 'E', 8, 64))
		qry.WriteString(", ")
		qry.WriteString(strconv.FormatFloat(c.Result, 'E', 8, 64))
		qry.WriteString(");")

		q := qry.String()
		if rdb.conf.DebugMode {
			log.Println("record DB query: " + q)
		}
		if _, err := tx.Exec(q); err != nil {
			tx.Rollback()
			return errors.New("error executing insert statement: " + q + " Error: " + err.Error())
		}
	}

	if err = tx.Commit(); err != nil {
		tx.Rollback()
		return err
	}

	return nil
}
