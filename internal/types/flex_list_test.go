package types

import (
	"encoding/json"
	"testing"
)

type item struct {
	Name string `json:"name"`
}

func TestFlexListSingleObject(t *testing.T) {
	var list FlexList[item]
	if err := json.Unmarshal([]byte(`{"name":"one"}`), &list); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	if len(list) != 1 || list[0].Name != "one" {
		t.Errorf("Expected a single wrapped item, got %+v", list)
	}
}

func TestFlexListArray(t *testing.T) {
	var body struct {
		Items FlexList[item] `json:"items"`
	}
	if err := json.Unmarshal([]byte(`{"items": [ {"name":"a"}, {"name":"b"} ]}`), &body); err != nil {
		t.Fatalf("Unmarshal failed: %v", err)
	}
	items := body.Items.Slice()
	if len(items) != 2 || items[1].Name != "b" {
		t.Errorf("Unexpected items: %+v", items)
	}
}
