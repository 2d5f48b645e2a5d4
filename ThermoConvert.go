package main

import (
	"flag"
	"os"
	"path/filepath"
	"time"

	"github.com/PhaseLab/ThermoConvert/config"
	"github.com/PhaseLab/ThermoConvert/convert"
	"github.com/PhaseLab/ThermoConvert/element"
	"github.com/PhaseLab/ThermoConvert/factortable"
	ht "github.com/PhaseLab/ThermoConvert/http"
	"github.com/PhaseLab/ThermoConvert/log"
	"github.com/PhaseLab/ThermoConvert/recorddb"
	"github.com/kardianos/service"
)

type app struct {
	conf *config.Config
	rdb  *recorddb.RecordDB
}

func (a *app) Start(s service.Service) error {
	go a.run()
	return nil
}

func (a *app) run() {
	execPath, err := os.Executable()
	if err != nil {
		panic(err)
	}

	conf, err := config.LoadConfig(filepath.Join(filepath.Dir(execPath), "config.json"))
	if err != nil {
		panic(err)
	}

	a.conf = conf

	log.Setup(filepath.Join(filepath.Dir(execPath), "thermoconvert.log"), conf.DebugMode)

	var reg *element.Registry
	if conf.AtomicMassesFile != "" {
		reg, err = element.NewRegistryWithMasses(conf.AtomicMassesFile)
		if err != nil {
			panic(err)
		}
	} else {
		reg = element.NewRegistry()
	}

	if conf.TableOutputDir != "" {
		if err = factortable.WriteAll(conf.TableOutputDir, reg); err != nil {
			log.Println("Error writing factor tables:", err)
		}
	}

	var recorder func(ht.Result)
	if conf.RecordDatabase.Address != "" {
		a.rdb = recorddb.SetupRecordDB(conf)
		recorder = func(res ht.Result) {
			err := a.rdb.InsertConversions([]recorddb.Conversion{{
				TimeStamp: time.Now(),
				Element:   res.Symbol,
				FromUnit:  res.From,
				ToUnit:    res.To,
				Value:     res.Value,
				Result:    res.Result,
			}})
			if err != nil {
				log.Println("Error recording conversion:", err)
			}
		}
	}

	ht.SetupServer(filepath.Join(filepath.Dir(execPath), "static"))
	if err = ht.StartServer(conf.HTTPServerPort, convert.NewConverter(reg), recorder); err != nil {
		panic(err)
	}
}

func (a *app) Stop(s service.Service) error {
	if a.rdb != nil {
		return a.rdb.Stop()
	}
	return nil
}

func main() {
	svcFlag := flag.String("service", "", "Control the system service.")
	flag.Parse()

	svcConfig := &service.Config{
		Name:        "ThermoConvert",
		DisplayName: "Thermodynamic Unit Converter",
		Description: "Provides API that converts entropy and energy units for chemical elements",
	}

	prg := &app{}
	s, err := service.New(prg, svcConfig)
	if err != nil {
		log.Fatal(err)
	}

	if *svcFlag != "" {
		err = service.Control(s, *svcFlag)
		if err != nil {
			log.Printf("Valid actions: %q\n", service.ControlAction)
			log.Fatal(err)
		}
		return
	}

	logger, err := s.Logger(nil)
	if err != nil {
		log.Fatal(err)
	}
	err = s.Run()
	if err != nil {
		logger.Error(err)
	}
}
