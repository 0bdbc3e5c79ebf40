// Copyright ©2012-2013 The bíogo Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package bam

import (
	"bytes"
	"fmt"
	"strconv"
)

// A ReferenceNamer resolves reference ids to reference sequence names
// during text rendering. It must tolerate concurrent calls.
type ReferenceNamer interface {
	// RefName returns the name of the reference with the given id and
	// whether the id could be resolved.
	RefName(id int) (string, bool)
}

// MarshalSAM formats the record as one SAM alignment line. Reference
// names resolve through refs; a nil refs or an unresolvable id renders
// as "*". The mate reference renders as "=" when it equals the
// record's own reference.
func (r *Record) MarshalSAM(refs ReferenceNamer) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\t%d\t%s\t%d\t%d\t%s\t%s\t%d\t%d\t%s\t%s",
		r.Name(),
		uint16(r.Flags()),
		refName(refs, r.RefID()),
		r.Pos()+1,
		r.MapQ(),
		r.Cigar(),
		mateName(refs, r.RefID(), r.MateRefID()),
		r.MatePos()+1,
		r.TempLen(),
		formatSeq(r.Seq()),
		formatQual(r.Qual()),
	)
	err := r.EachAux(func(key string, v interface{}) error {
		buf.WriteByte('\t')
		buf.WriteString(auxText(key, v))
		return nil
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func refName(refs ReferenceNamer, id int) string {
	if refs == nil || id == -1 {
		return "*"
	}
	name, ok := refs.RefName(id)
	if !ok {
		return "*"
	}
	return name
}

func mateName(refs ReferenceNamer, id, mateID int) string {
	if mateID == -1 {
		return "*"
	}
	if mateID == id && id != -1 {
		return "="
	}
	return refName(refs, mateID)
}

func formatSeq(s Seq) string {
	if s.Len() == 0 {
		return "*"
	}
	return s.String()
}

func formatQual(q []byte) []byte {
	if len(q) == 0 || q[0] == 0xff {
		return []byte{'*'}
	}
	a := make([]byte, len(q))
	for i, p := range q {
		a[i] = p + 33
	}
	return a
}

// auxText renders one tag as KEY:TYPE:VALUE. All integer widths render
// with the SAM type letter 'i'.
func auxText(key string, v interface{}) string {
	switch v := v.(type) {
	case Char:
		return fmt.Sprintf("%s:A:%c", key, byte(v))
	case int8:
		return fmt.Sprintf("%s:i:%d", key, v)
	case uint8:
		return fmt.Sprintf("%s:i:%d", key, v)
	case int16:
		return fmt.Sprintf("%s:i:%d", key, v)
	case uint16:
		return fmt.Sprintf("%s:i:%d", key, v)
	case int32:
		return fmt.Sprintf("%s:i:%d", key, v)
	case uint32:
		return fmt.Sprintf("%s:i:%d", key, v)
	case float32:
		return fmt.Sprintf("%s:f:%s", key, strconv.FormatFloat(float64(v), 'g', -1, 32))
	case string:
		return fmt.Sprintf("%s:Z:%s", key, v)
	case Hex:
		return fmt.Sprintf("%s:H:%s", key, []byte(v))
	case []int8:
		return key + ":B:c" + auxArrayText(len(v), func(i int) string { return strconv.FormatInt(int64(v[i]), 10) })
	case []uint8:
		return key + ":B:C" + auxArrayText(len(v), func(i int) string { return strconv.FormatUint(uint64(v[i]), 10) })
	case []int16:
		return key + ":B:s" + auxArrayText(len(v), func(i int) string { return strconv.FormatInt(int64(v[i]), 10) })
	case []uint16:
		return key + ":B:S" + auxArrayText(len(v), func(i int) string { return strconv.FormatUint(uint64(v[i]), 10) })
	case []int32:
		return key + ":B:i" + auxArrayText(len(v), func(i int) string { return strconv.FormatInt(int64(v[i]), 10) })
	case []uint32:
		return key + ":B:I" + auxArrayText(len(v), func(i int) string { return strconv.FormatUint(uint64(v[i]), 10) })
	case []float32:
		return key + ":B:f" + auxArrayText(len(v), func(i int) string { return strconv.FormatFloat(float64(v[i]), 'g', -1, 32) })
	default:
		return fmt.Sprintf("%s:?:%v", key, v)
	}
}

func auxArrayText(n int, elem func(int) string) string {
	var b bytes.Buffer
	for i := 0; i < n; i++ {
		b.WriteByte(',')
		b.WriteString(elem(i))
	}
	return b.String()
}
