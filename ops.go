package rete

import "reflect"

// compareOp applies op to a fact's extracted field value fv against the
// pattern's literal constraint value cv. Numeric kinds are compared as
// float64 regardless of exact width/signedness (int vs int64 vs float32
// constraints all compare sensibly); everything else falls back to
// reflect.DeepEqual for Eq/Neq and is never orderable.
func compareOp(op Op, fv, cv any) bool {
	switch op {
	case Eq:
		return valuesEqual(fv, cv)
	case Neq:
		return !valuesEqual(fv, cv)
	case Gt, Gte, Lt, Lte:
		lf, lok := toFloat(fv)
		rf, rok := toFloat(cv)
		if !lok || !rok {
			return false
		}
		switch op {
		case Gt:
			return lf > rf
		case Gte:
			return lf >= rf
		case Lt:
			return lf < rf
		case Lte:
			return lf <= rf
		}
	}
	return false
}

func valuesEqual(a, b any) bool {
	af, aok := toFloat(a)
	bf, bok := toFloat(b)
	if aok && bok {
		return af == bf
	}
	return reflect.DeepEqual(a, b)
}

func toFloat(v any) (float64, bool) {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return float64(rv.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return float64(rv.Uint()), true
	case reflect.Float32, reflect.Float64:
		return rv.Float(), true
	default:
		return 0, false
	}
}
