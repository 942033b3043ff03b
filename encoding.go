package ospace

import (
	"bytes"
	"fmt"

	"github.com/vmihailenco/msgpack/v5"
)

// encodeObject marshals a user value into its stored form: the verbatim
// msgpack bytes plus the canonical tree decoded back out of them. Going
// through the wire bytes rather than reflecting over the value directly
// guarantees that the tree the indexer sees is exactly what a later
// decode will see.
func encodeObject(obj any) ([]byte, tree, error) {
	var buf bytes.Buffer
	enc := msgpack.GetEncoder()
	enc.Reset(&buf)
	enc.SetSortMapKeys(true)
	err := enc.Encode(obj)
	msgpack.PutEncoder(enc)
	if err != nil {
		return nil, tree{}, encodeErrf(obj, err, "cannot marshal %T", obj)
	}

	raw := buf.Bytes()
	t, err := decodeTree(raw)
	if err != nil {
		return nil, tree{}, encodeErrf(obj, err, "%T does not encode to a supported shape", obj)
	}
	return raw, t, nil
}

// decodeObject unmarshals stored msgpack bytes into objPtr, which must be
// a pointer to the Entry's user type.
func decodeObject(raw []byte, objPtr any) error {
	var r bytes.Reader
	r.Reset(raw)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	err := dec.Decode(objPtr)
	msgpack.PutDecoder(dec)
	if err != nil {
		return decodeErrf(raw, err, "cannot unmarshal into %T", objPtr)
	}
	return nil
}

// decodeTree parses msgpack bytes into the canonical tree. Loose
// interface decoding yields the leaf vocabulary we index (int64, uint64,
// float64, bool, string, nil) plus maps, slices and byte strings; any
// other decoded value, such as an extension type, is rejected by treeOf.
func decodeTree(raw []byte) (tree, error) {
	v, err := looseValue(raw)
	if err != nil {
		return tree{}, err
	}
	return treeOf(v)
}

func looseValue(raw []byte) (any, error) {
	var r bytes.Reader
	r.Reset(raw)
	dec := msgpack.GetDecoder()
	dec.Reset(&r)
	v, err := dec.DecodeInterfaceLoose()
	msgpack.PutDecoder(dec)
	return v, err
}

func treeOf(v any) (tree, error) {
	switch v := v.(type) {
	case nil:
		return leafTree(nullLeaf()), nil
	case bool:
		return leafTree(boolLeaf(v)), nil
	case int64:
		return leafTree(intLeaf(v)), nil
	case uint64:
		return leafTree(uintLeaf(v)), nil
	case float64:
		return leafTree(floatLeaf(v)), nil
	case float32:
		return leafTree(floatLeaf(float64(v))), nil
	case string:
		return leafTree(stringLeaf(v)), nil
	case []byte:
		return seqTree(), nil
	case []any:
		return seqTree(), nil
	case map[string]any:
		fields := make(map[string]tree, len(v))
		for name, sub := range v {
			st, err := treeOf(sub)
			if err != nil {
				return tree{}, err
			}
			fields[name] = st
		}
		return mapTree(fields), nil
	default:
		return tree{}, fmt.Errorf("unsupported leaf %T", v)
	}
}
