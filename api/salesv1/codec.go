// Package salesv1 defines the omnipos.sales.v1 gRPC services. Messages are
// plain Go structs carried by a JSON codec registered under content-subtype
// "json"; clients must call with grpc.CallContentSubtype(CodecName).
package salesv1

import (
	"encoding/json"

	"google.golang.org/grpc/encoding"
)

const CodecName = "json"

type jsonCodec struct{}

func (jsonCodec) Marshal(v any) ([]byte, error)      { return json.Marshal(v) }
func (jsonCodec) Unmarshal(data []byte, v any) error { return json.Unmarshal(data, v) }
func (jsonCodec) Name() string                       { return CodecName }

func init() {
	encoding.RegisterCodec(jsonCodec{})
}
