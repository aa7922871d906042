package graphproxy

import (
	"strconv"

	"github.com/google/uuid"
	"golang.org/x/xerrors"
)

// PropertyKind identifies which store Property variant a PropertyValue was
// encoded as.
type PropertyKind int

const (
	PropNull PropertyKind = iota
	PropChar
	PropInt
	PropLong
	PropFloat
	PropDouble
	PropString
	PropUUID
	PropCharList
	PropIntList
	PropLongList
	PropFloatList
	PropDoubleList
	PropStringList
)

// PropertyValue is a runtime Object value encoded into a store property
// variant.
type PropertyValue struct {
	Kind PropertyKind
	Raw  interface{}
}

// EncodeValue maps a runtime value to a store Property variant by
// primitive family: byte→char, int32→Int, int64→Long,
// unsigned widths widen to the next signed type, float32→Float,
// float64→Double, string→String, uuid.UUID→UUID. nil maps to the null
// property. A slice encodes element-wise using the first element's family
// to pick the list variant; mixed-family slices are rejected.
//
// uuid.UUID is accepted as its own family rather than widened to string:
// a store that hands out external vertex keys as UUIDs (the same idiom the
// link-graph store uses for LinkID) needs to round-trip them through
// IndexScanVertex without losing the distinction from an ordinary string
// property.
func EncodeValue(v interface{}) (PropertyValue, error) {
	if v == nil {
		return PropertyValue{Kind: PropNull}, nil
	}

	switch val := v.(type) {
	case byte:
		return PropertyValue{Kind: PropChar, Raw: val}, nil
	case int32:
		return PropertyValue{Kind: PropInt, Raw: val}, nil
	case uint32:
		return PropertyValue{Kind: PropLong, Raw: int64(val)}, nil
	case int64:
		return PropertyValue{Kind: PropLong, Raw: val}, nil
	case uint64:
		return PropertyValue{Kind: PropLong, Raw: int64(val)}, nil
	case float32:
		return PropertyValue{Kind: PropFloat, Raw: val}, nil
	case float64:
		return PropertyValue{Kind: PropDouble, Raw: val}, nil
	case string:
		return PropertyValue{Kind: PropString, Raw: val}, nil
	case uuid.UUID:
		return PropertyValue{Kind: PropUUID, Raw: val}, nil
	case []interface{}:
		return encodeList(val)
	default:
		return PropertyValue{}, xerrors.Errorf("graphproxy: unsupported value type %T", v)
	}
}

func encodeList(values []interface{}) (PropertyValue, error) {
	if len(values) == 0 {
		return PropertyValue{Kind: PropStringList, Raw: []string{}}, nil
	}

	first, err := EncodeValue(values[0])
	if err != nil {
		return PropertyValue{}, err
	}

	listKind, ok := listVariantFor(first.Kind)
	if !ok {
		return PropertyValue{}, xerrors.Errorf("graphproxy: %v cannot appear in a list", first.Kind)
	}

	encoded := make([]interface{}, 0, len(values))
	for _, v := range values {
		ev, err := EncodeValue(v)
		if err != nil {
			return PropertyValue{}, err
		}
		if ev.Kind != first.Kind {
			return PropertyValue{}, xerrors.Errorf(
				"graphproxy: mixed-family list (%v, then %v) is not supported", first.Kind, ev.Kind)
		}
		encoded = append(encoded, ev.Raw)
	}
	return PropertyValue{Kind: listKind, Raw: encoded}, nil
}

func listVariantFor(kind PropertyKind) (PropertyKind, bool) {
	switch kind {
	case PropChar:
		return PropCharList, true
	case PropInt:
		return PropIntList, true
	case PropLong:
		return PropLongList, true
	case PropFloat:
		return PropFloatList, true
	case PropDouble:
		return PropDoubleList, true
	case PropString:
		return PropStringList, true
	default:
		return 0, false
	}
}

// snapshotIDExtraKey is the QueryParams.Extra key the compiler is expected
// to populate.
const snapshotIDExtraKey = "SID"

// ResolveSnapshotId reads the snapshot id from params.Extra["SID"],
// falling back to DefaultSnapshotId on a parse failure or when the key is
// absent.
func ResolveSnapshotId(params QueryParams) SnapshotId {
	raw, ok := params.Extra[snapshotIDExtraKey]
	if !ok {
		return DefaultSnapshotId
	}
	n, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return DefaultSnapshotId
	}
	return SnapshotId(n)
}
