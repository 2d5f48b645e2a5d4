package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/PhaseLab/ThermoConvert/convert"
	"github.com/PhaseLab/ThermoConvert/element"
)

func setup(t *testing.T) *[]Result {
	t.Helper()

	converter = convert.NewConverter(element.NewRegistry())
	recorded := &[]Result{}
	recordFunc = func(r Result) { *recorded = append(*recorded, r) }
	t.Cleanup(func() {
		converter = nil
		recordFunc = nil
	})

	return recorded
}

func get(target string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	convertEndpoint(w, httptest.NewRequest(http.MethodGet, target, nil))
	return w
}

func TestConvertEndpoint(t *testing.T) {
	recorded := setup(t)

	w := get("/convert?element=Carbon&from=erg/g&to=eV/atom")
	if w.Code != http.StatusOK {
		t.Fatalf("status %d: %s", w.Code, w.Body.String())
	}

	var res Result
	if err := json.NewDecoder(w.Body).Decode(&res); err != nil {
		t.Fatal(err)
	}

	if res.Element != "Carbon" || res.Symbol != "C" || res.Value != 1 {
		t.Fatalf("unexpected result %+v", res)
	}
	if rel := (res.Result - 1.244867e-11) / 1.244867e-11; rel > 1e-4 || rel < -1e-4 {
		t.Fatalf("result %v, want about 1.244867e-11", res.Result)
	}

	if len(*recorded) != 1 || (*recorded)[0] != res {
		t.Fatalf("conversion not recorded: %+v", *recorded)
	}
}

func TestConvertEndpointDefaultValue(t *testing.T) {
	setup(t)

	with := get("/convert?element=C&from=J/g/K&to=kB/atom&value=1")
	without := get("/convert?element=C&from=J/g/K&to=kB/atom")

	if with.Code != http.StatusOK || without.Code != http.StatusOK {
		t.Fatalf("status %d / %d", with.Code, without.Code)
	}
	if with.Body.String() != without.Body.String() {
		t.Fatal("omitted value should behave as value=1")
	}
}

func TestConvertEndpointUnknownElement(t *testing.T) {
	setup(t)

	w := get("/convert?element=Unobtainium&from=erg/g&to=eV/atom")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "Unobtainium") {
		t.Fatalf("error does not name the identifier: %s", w.Body.String())
	}
}

func TestConvertEndpointUnsupportedPair(t *testing.T) {
	recorded := setup(t)

	w := get("/convert?element=C&from=kB/atom&to=Ry/atom")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
	if !strings.Contains(w.Body.String(), "kB/atom") || !strings.Contains(w.Body.String(), "Ry/atom") {
		t.Fatalf("error does not name the unit pair: %s", w.Body.String())
	}
	if len(*recorded) != 0 {
		t.Fatal("failed conversion must not be recorded")
	}
}

func TestConvertEndpointBadValue(t *testing.T) {
	setup(t)

	w := get("/convert?element=C&from=erg/g&to=eV/atom&value=abc")
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status %d, want 400", w.Code)
	}
}

func TestElementsEndpoint(t *testing.T) {
	setup(t)

	w := httptest.NewRecorder()
	elementsEndpoint(w, httptest.NewRequest(http.MethodGet, "/elements", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var els []element.Element
	if err := json.NewDecoder(w.Body).Decode(&els); err != nil {
		t.Fatal(err)
	}
	if len(els) != 118 {
		t.Fatalf("%d elements, want 118", len(els))
	}
}

func TestUnitsEndpoint(t *testing.T) {
	setup(t)

	w := httptest.NewRecorder()
	unitsEndpoint(w, httptest.NewRequest(http.MethodGet, "/units", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status %d", w.Code)
	}

	var units map[string]string
	if err := json.NewDecoder(w.Body).Decode(&units); err != nil {
		t.Fatal(err)
	}
	if units["kB/atom"] != "entropy" || units["eV/atom"] != "energy" {
		t.Fatalf("unexpected units map: %v", units)
	}
}
