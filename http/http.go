package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/PhaseLab/ThermoConvert/convert"
	"github.com/PhaseLab/ThermoConvert/log"
)

var converter *convert.Converter
var recordFunc func(Result)

// Result is a single completed conversion returned to the client.
type Result struct {
	Element string  `json:"element"`
	Symbol  string  `json:"symbol"`
	From    string  `json:"from"`
	To      string  `json:"to"`
	Value   float64 `json:"value"`
	Result  float64 `json:"result"`
}

func SetupServer(staticFilesPath string) {
	http.Handle("/", http.FileServer(http.Dir(staticFilesPath)))
	http.HandleFunc("/convert", convertEndpoint)
	http.HandleFunc("/elements", elementsEndpoint)
	http.HandleFunc("/units", unitsEndpoint)
}

func StartServer(port string, c *convert.Converter, recorder func(Result)) error {
	converter = c
	recordFunc = recorder
	log.Println("Starting ThermoConvert service")
	return http.ListenAndServe(":"+port, nil)
}

func convertEndpoint(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	identifier := q.Get("element")
	fromUnit := q.Get("from")
	toUnit := q.Get("to")

	value := 1.0
	if v := q.Get("value"); v != "" {
		var err error
		value, err = strconv.ParseFloat(v, 64)
		if err != nil {
			http.Error(w, "invalid value: "+v, http.StatusBadRequest)
			return
		}
	}

	el, err := converter.Registry().Resolve(identifier)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	res, err := converter.ConvertElement(el, fromUnit, toUnit, value)
	if err != nil {
		var unsupported *convert.UnsupportedConversionError
		if errors.As(err, &unsupported) {
			http.Error(w, err.Error(), http.StatusBadRequest)
		} else {
			errMsg := "Error performing conversion: " + err.Error()
			log.Println(errMsg)
			http.Error(w, errMsg, http.StatusInternalServerError)
		}
		return
	}

	out := Result{
		Element: el.Name,
		Symbol:  el.Symbol,
		From:    convert.CanonicalUnit(fromUnit),
		To:      convert.CanonicalUnit(toUnit),
		Value:   value,
		Result:  res,
	}

	if recordFunc != nil {
		recordFunc(out)
	}

	enc := json.NewEncoder(w)
	w.Header().Set("Content-Type", "application/json")
	if err = enc.Encode(out); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
}

func elementsEndpoint(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, converter.Registry().All())
}

func unitsEndpoint(w http.ResponseWriter, r *http.Request) {
	units := convert.Units()
	out := make(map[string]string, len(units))
	for u, k := range units {
		out[u] = k.String()
	}
	writeJSON(w, out)
}

func writeJSON(w http.ResponseWriter, v interface{}) {
	enc := json.NewEncoder(w)
	w.Header().Set("Content-Type", "application/json")
	if err := enc.Encode(v); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
	}
}
