package xapi

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"strconv"

	"github.com/xenbackup/xenbackup/internal/common/core"
)

// The pack's retrieval corpus carries no XML-RPC client anywhere
// (grep across every example repo's go.mod turns up nothing), so the
// wire codec for the hypervisor's control API is hand-rolled here on
// top of encoding/xml, the same way the teacher SDK hand-rolls its
// REST JSON envelope on top of encoding/json. mapstructure.Decode is
// then used to turn the generic map produced below into typed
// pkg/entities structs, rather than hand-writing a second reflective
// walk.

type methodCall struct {
	XMLName    xml.Name `xml:"methodCall"`
	MethodName string   `xml:"methodName"`
	Params     []xmlRPCParam `xml:"params>param"`
}

type xmlRPCParam struct {
	Value xmlRPCValue `xml:"value"`
}

type methodResponse struct {
	XMLName xml.Name      `xml:"methodResponse"`
	Params  []xmlRPCParam `xml:"params>param"`
	Fault   *xmlRPCFault  `xml:"fault"`
}

type xmlRPCFault struct {
	Value xmlRPCValue `xml:"value"`
}

// xmlRPCValue mirrors the XML-RPC <value> grammar closely enough to
// round-trip every shape the hypervisor emits: scalars, <struct>
// members and <array> data, plus a bare string fallback for values
// with no child element (XML-RPC treats untyped value text as string).
type xmlRPCValue struct {
	String  *string          `xml:"string"`
	Int     *string          `xml:"int"`
	I4      *string          `xml:"i4"`
	Boolean *string          `xml:"boolean"`
	Double  *string          `xml:"double"`
	Struct  *xmlRPCStruct    `xml:"struct"`
	Array   *xmlRPCArray     `xml:"array"`
	Text    string           `xml:",chardata"`
}

type xmlRPCStruct struct {
	Members []xmlRPCMember `xml:"member"`
}

type xmlRPCMember struct {
	Name  string      `xml:"name"`
	Value xmlRPCValue `xml:"value"`
}

type xmlRPCArray struct {
	Values []xmlRPCValue `xml:"data>value"`
}

// encodeValue builds an xmlRPCValue from a Go value. Accepted inputs
// are the JSON-like set produced by callers throughout this module:
// string, bool, int/int64, float64, []any, map[string]any, and Ref
// (encoded as its underlying string).
func encodeValue(v any) (xmlRPCValue, error) {
	switch t := v.(type) {
	case nil:
		s := ""
		return xmlRPCValue{String: &s}, nil
	case Ref:
		s := string(t)
		return xmlRPCValue{String: &s}, nil
	case string:
		return xmlRPCValue{String: &t}, nil
	case bool:
		s := "0"
		if t {
			s = "1"
		}
		return xmlRPCValue{Boolean: &s}, nil
	case int:
		s := strconv.Itoa(t)
		return xmlRPCValue{Int: &s}, nil
	case int64:
		s := strconv.FormatInt(t, 10)
		return xmlRPCValue{Int: &s}, nil
	case float64:
		s := strconv.FormatFloat(t, 'f', -1, 64)
		return xmlRPCValue{Double: &s}, nil
	case []string:
		arr := make([]xmlRPCValue, 0, len(t))
		for _, item := range t {
			arr = append(arr, xmlRPCValue{String: strPtr(item)})
		}
		return xmlRPCValue{Array: &xmlRPCArray{Values: arr}}, nil
	case []any:
		arr := make([]xmlRPCValue, 0, len(t))
		for _, item := range t {
			ev, err := encodeValue(item)
			if err != nil {
				return xmlRPCValue{}, err
			}
			arr = append(arr, ev)
		}
		return xmlRPCValue{Array: &xmlRPCArray{Values: arr}}, nil
	case map[string]any:
		members := make([]xmlRPCMember, 0, len(t))
		for k, item := range t {
			ev, err := encodeValue(item)
			if err != nil {
				return xmlRPCValue{}, err
			}
			members = append(members, xmlRPCMember{Name: k, Value: ev})
		}
		return xmlRPCValue{Struct: &xmlRPCStruct{Members: members}}, nil
	default:
		return xmlRPCValue{}, core.ErrUnexpectedValueShape.WithArgs(v)
	}
}

func strPtr(s string) *string { return &s }

// decodeValue turns a parsed xmlRPCValue back into the generic
// JSON-like representation used throughout the gateway.
func decodeValue(v xmlRPCValue) (any, error) {
	switch {
	case v.Struct != nil:
		out := make(map[string]any, len(v.Struct.Members))
		for _, m := range v.Struct.Members {
			dv, err := decodeValue(m.Value)
			if err != nil {
				return nil, err
			}
			out[m.Name] = dv
		}
		return out, nil
	case v.Array != nil:
		out := make([]any, 0, len(v.Array.Values))
		for _, item := range v.Array.Values {
			dv, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			out = append(out, dv)
		}
		return out, nil
	case v.Boolean != nil:
		return *v.Boolean == "1" || *v.Boolean == "true", nil
	case v.Int != nil:
		n, err := strconv.ParseInt(*v.Int, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case v.I4 != nil:
		n, err := strconv.ParseInt(*v.I4, 10, 64)
		if err != nil {
			return nil, err
		}
		return n, nil
	case v.Double != nil:
		f, err := strconv.ParseFloat(*v.Double, 64)
		if err != nil {
			return nil, err
		}
		return f, nil
	case v.String != nil:
		return *v.String, nil
	default:
		return v.Text, nil
	}
}

// encodeCall marshals an XML-RPC method call.
func encodeCall(method string, args []any) ([]byte, error) {
	call := methodCall{MethodName: method}
	for _, a := range args {
		ev, err := encodeValue(a)
		if err != nil {
			return nil, err
		}
		call.Params = append(call.Params, xmlRPCParam{Value: ev})
	}

	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	if err := enc.Encode(call); err != nil {
		return nil, core.ErrFailedToMarshalRequest.WithArgs(err)
	}
	return buf.Bytes(), nil
}

// decodeResponse unmarshals an XML-RPC method response. A hypervisor
// "Status: Failure" response decodes through the same struct/array
// rules and is reported by the call layer, which inspects the
// struct's Status and ErrorDescription members (the master wraps its
// error in the struct value of an ordinary response, per XenAPI
// convention, not a SOAP-style <fault> element — <fault> is only
// populated for transport-level RPC errors).
func decodeResponse(body []byte) (any, *xmlRPCFault, error) {
	var resp methodResponse
	if err := xml.Unmarshal(body, &resp); err != nil {
		return nil, nil, core.ErrFailedToUnmarshalResponse.WithArgs(err)
	}
	if resp.Fault != nil {
		return nil, resp.Fault, nil
	}
	if len(resp.Params) == 0 {
		return nil, nil, fmt.Errorf("xapi: empty method response")
	}
	v, err := decodeValue(resp.Params[0].Value)
	return v, nil, err
}
