package minleo

import (
	"encoding/binary"
	"math/big"
)

// outputBuf builds the canonical byte encoding a program checksum is
// computed over. The encoding is length-prefixed throughout so it is
// unambiguous.
type outputBuf struct {
	buf []byte
}

func (o *outputBuf) appendUint32(x uint32) {
	o.buf = binary.LittleEndian.AppendUint32(o.buf, x)
}

func (o *outputBuf) appendString(s string) {
	o.appendUint32(uint32(len(s)))
	o.buf = append(o.buf, s...)
}

func (o *outputBuf) appendBigInt(x *big.Int) {
	b := x.Bytes()
	o.appendUint32(uint32(len(b)))
	o.buf = append(o.buf, b...)
}

func (o *outputBuf) bytes() []byte {
	return o.buf
}

func canonicalStatements(stmts []Statement) []byte {
	o := &outputBuf{}
	o.appendUint32(uint32(len(stmts)))
	for _, st := range stmts {
		o.appendUint32(uint32(st.Type))
		o.appendString(st.Name)
		canonicalExpression(o, st.Expr)
		canonicalExpression(o, st.Right)
	}
	return o.bytes()
}

func canonicalExpression(o *outputBuf, e *Expression) {
	if e == nil {
		o.appendUint32(0)
		return
	}
	o.appendUint32(1)
	o.appendUint32(uint32(e.Type))
	o.appendString(e.Ident)
	if e.Value != nil {
		o.appendBigInt(e.Value)
	} else {
		o.appendUint32(0)
	}
	canonicalExpression(o, e.Left)
	canonicalExpression(o, e.Right)
}
