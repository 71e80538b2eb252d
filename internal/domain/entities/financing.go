package entities

import (
	"bytes"
	"encoding/json"
)

// Node types of the EFK campaign financing tree.
const (
	NodeCampaignFinancing = "campaign_financing"
	NodeActorCategory     = "actor_category"
	NodeActor             = "actor"
	NodeCampaign          = "campaign"
	NodeForm              = "form"
)

// FinancingNode is one node of the EFK financing tree: a ballot, an actor
// category, an actor, one of its campaigns or a declaration form.
type FinancingNode struct {
	ID       NodeID          `json:"id"`
	Type     string          `json:"type"`
	Label    string          `json:"label"`
	Children []FinancingNode `json:"children"`
}

// NodeID accepts both numeric and string identifiers.
type NodeID string

func (id *NodeID) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = NodeID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = NodeID(n.String())
	return nil
}

func (id NodeID) String() string {
	return string(id)
}
