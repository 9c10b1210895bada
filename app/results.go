package app

import (
	"github.com/gogo/protobuf/proto"
	"github.com/iov-one/goalchain"
	"github.com/iov-one/goalchain/errors"
	abci "github.com/tendermint/tendermint/abci/types"
)

// ResultSet is the wire form of the keys, or of the values, a query found.
// A response carries the keys in its Key field and the values in its Value
// field, both in the same order.
type ResultSet struct {
	Results [][]byte `protobuf:"bytes,1,rep,name=results,proto3" json:"results,omitempty"`
}

func (r *ResultSet) Marshal() ([]byte, error) { return proto.Marshal((*resultSetWire)(r)) }

func (r *ResultSet) Unmarshal(raw []byte) error { return proto.Unmarshal(raw, (*resultSetWire)(r)) }

type resultSetWire ResultSet

func (m *resultSetWire) Reset()         { *m = resultSetWire{} }
func (m *resultSetWire) String() string { return proto.CompactTextString(m) }
func (*resultSetWire) ProtoMessage()    {}

// encodeModels fills the Key and Value fields of a query response.
func encodeModels(res *abci.ResponseQuery, models []goalchain.Model) error {
	keys := ResultSet{Results: make([][]byte, len(models))}
	values := ResultSet{Results: make([][]byte, len(models))}
	for i, m := range models {
		keys.Results[i], values.Results[i] = m.Key, m.Value
	}
	var err error
	if res.Key, err = keys.Marshal(); err != nil {
		return errors.Wrap(err, "marshal keys")
	}
	if res.Value, err = values.Marshal(); err != nil {
		return errors.Wrap(err, "marshal values")
	}
	return nil
}

// decodeModels reverses encodeModels.
func decodeModels(res abci.ResponseQuery) ([]goalchain.Model, error) {
	var keys, values ResultSet
	if err := keys.Unmarshal(res.Key); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "keys: %s", err)
	}
	if err := values.Unmarshal(res.Value); err != nil {
		return nil, errors.Wrapf(errors.ErrInput, "values: %s", err)
	}
	if len(keys.Results) != len(values.Results) {
		return nil, errors.Wrapf(errors.ErrState, "%d keys and %d values", len(keys.Results), len(values.Results))
	}
	models := make([]goalchain.Model, len(keys.Results))
	for i, k := range keys.Results {
		models[i] = goalchain.Pair(k, values.Results[i])
	}
	return models, nil
}

// Query runs a query against app and returns the models found. A failed
// query is an error holding the response log.
func Query(app abci.Application, path string, data []byte) ([]goalchain.Model, error) {
	res := app.Query(abci.RequestQuery{Path: path, Data: data})
	if res.Code != errors.SuccessABCICode {
		return nil, errors.Wrapf(errors.ErrInput, "query %q failed with code %d: %s", path, res.Code, res.Log)
	}
	return decodeModels(res)
}
