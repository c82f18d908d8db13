package list

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"
)

func TestMarshalJSON(t *testing.T) {
	for _, test := range []struct {
		l    *List[int]
		want string
	}{
		{Of(1, 2, 3), "[1,2,3]"},
		{New[int](), "[]"},
	} {
		got, err := json.Marshal(test.l)
		if err != nil {
			t.Errorf("json.Marshal(%v) -> error %v", test.l, err)
			continue
		}
		if string(got) != test.want {
			t.Errorf("json.Marshal(%v) -> %s, want %s", test.l, got, test.want)
		}
	}
}

func TestUnmarshalJSON(t *testing.T) {
	l := Of("old")
	if err := json.Unmarshal([]byte(`["a", "b"]`), l); err != nil {
		t.Fatal(err)
	}
	checkElems(t, l, []string{"a", "b"})

	if err := json.Unmarshal([]byte(`null`), l); err != nil {
		t.Fatal(err)
	}
	checkElems(t, l, nil)

	if err := json.Unmarshal([]byte(`{"a": 1}`), l); err == nil {
		t.Errorf("decoding an object succeeded")
	}
}

func TestJSON_InStruct(t *testing.T) {
	type doc struct {
		Items *List[int] `json:"items"`
	}
	var d doc
	if err := json.Unmarshal([]byte(`{"items": [3, 1, 2]}`), &d); err != nil {
		t.Fatal(err)
	}
	checkElems(t, d.Items, []int{3, 1, 2})
	out, err := json.Marshal(d)
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != `{"items":[3,1,2]}` {
		t.Errorf("json.Marshal -> %s", out)
	}
}

func TestYAML(t *testing.T) {
	out, err := yaml.Marshal(Of(1, 2, 3))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff("- 1\n- 2\n- 3\n", string(out)); diff != "" {
		t.Errorf("yaml.Marshal (-want +got):\n%s", diff)
	}

	out, err = yaml.Marshal(New[int]())
	if err != nil {
		t.Fatal(err)
	}
	if string(out) != "[]\n" {
		t.Errorf("yaml.Marshal of empty list -> %q", out)
	}

	l := New[string]()
	if err := yaml.Unmarshal([]byte("- x\n- y\n"), l); err != nil {
		t.Fatal(err)
	}
	checkElems(t, l, []string{"x", "y"})

	if err := yaml.Unmarshal([]byte("a: b\n"), l); err == nil {
		t.Errorf("decoding a mapping succeeded")
	}
}
