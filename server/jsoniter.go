// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"io"
	"reflect"
	"strconv"
	"unsafe"

	"github.com/SoftbearStudios/terrainmesh/generator"
	"github.com/SoftbearStudios/terrainmesh/mesh"
	jsoniter "github.com/json-iterator/go"
)

// Make sure functions get run first
var json = func() jsoniter.API {
	neverEmpty := func(pointer unsafe.Pointer) bool { return false }

	// Encoders
	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(mesh.Vec3f{}).String(), encodeVec3f, neverEmpty)
	jsoniter.RegisterTypeEncoderFunc(reflect.TypeOf(Message{}).String(), encodeMessage, neverEmpty)

	// Decoders
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(mesh.Vec3f{}).String(), decodeVec3f)
	jsoniter.RegisterTypeDecoderFunc(reflect.TypeOf(Message{}).String(), decodeMessage)
	jsoniter.RegisterFieldDecoderFunc(reflect.TypeOf(generator.Config{}).String(), "Seed", decodeSeed)

	return jsoniter.Config{
		IndentionStep:                 0,
		MarshalFloatWith6Digits:       false,
		EscapeHTML:                    false,
		SortMapKeys:                   true,
		UseNumber:                     false,
		DisallowUnknownFields:         false,
		TagKey:                        "json",
		OnlyTaggedField:               false,
		ValidateJsonRawMessage:        false,
		ObjectFieldMustBeSimpleString: true,
		CaseSensitive:                 true,
	}.Froze()
}()

// JSON is the codec used on the wire, also used to dump meshes to files.
func JSON() jsoniter.API {
	return json
}

func encodeMessage(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	message := (*Message)(ptr)
	stream.WriteVal(message.messageJSON())
}

// Encodes a vertex as [x, y, z], the layout vertex buffers use.
func encodeVec3f(ptr unsafe.Pointer, stream *jsoniter.Stream) {
	vec := (*mesh.Vec3f)(ptr)
	stream.WriteArrayStart()
	for i, component := range vec.Array() {
		if i > 0 {
			stream.WriteMore()
		}
		stream.WriteFloat32(component)
	}
	stream.WriteArrayEnd()
}

func decodeVec3f(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	vec := (*mesh.Vec3f)(ptr)
	components := [...]*float32{&vec.X, &vec.Y, &vec.Z}

	i := 0
	iter.ReadArrayCB(func(iter *jsoniter.Iterator) bool {
		if i >= len(components) {
			iter.ReportError("decode vertex", "more than 3 components")
			return false
		}
		*components[i] = iter.ReadFloat32()
		i++
		return true
	})

	if iter.Error == nil && i != len(components) {
		iter.ReportError("decode vertex", "fewer than 3 components")
	}
}

// Seeds are sent as strings so they survive float64 clients, and are
// accepted back as either a string or a number.
func decodeSeed(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	seed := (**int64)(ptr)

	var value int64
	switch iter.WhatIsNext() {
	case jsoniter.NilValue:
		iter.ReadNil()
		*seed = nil
		return
	case jsoniter.StringValue:
		var err error
		if value, err = strconv.ParseInt(iter.ReadString(), 10, 64); err != nil {
			iter.ReportError("decode seed", err.Error())
			return
		}
	default:
		value = iter.ReadInt64()
	}

	*seed = &value
}

// messageRaw defers decoding data until its type is known.
type messageRaw struct {
	Data jsoniter.RawMessage `json:"data"`
	Type messageType         `json:"type"`
}

func decodeMessage(ptr unsafe.Pointer, iter *jsoniter.Iterator) {
	var raw messageRaw
	iter.ReadVal(&raw)
	if iter.Error != nil {
		return
	}

	message := (*Message)(ptr)

	typ, ok := inboundMessageTypes[raw.Type]
	if !ok {
		message.Data = InvalidInbound{messageType: raw.Type}
		return
	}

	in := reflect.New(typ)
	if len(raw.Data) > 0 {
		// Pool iterator with previous pool
		pool := iter.Pool()
		dataIter := pool.BorrowIterator(raw.Data)
		defer pool.ReturnIterator(dataIter)

		dataIter.ReadVal(in.Interface())
		if err := dataIter.Error; err != nil && err != io.EOF {
			iter.ReportError("decode message", err.Error())
			return
		}
	}

	message.Data = in.Elem().Interface()
}
