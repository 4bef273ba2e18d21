// Copyright 2025 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
	"github.com/poiesic/staffsearch/core"
)

// float32SliceMUS serializes embedding vectors. Raw encoding keeps the exact
// bit pattern, so a round trip never perturbs similarity scores.
var float32SliceMUS = ord.NewSliceSer[float32](raw.Float32)

// UnitMUS implements MUS serialization for core.RetrievableUnit.
var UnitMUS = unitMUS{}

type unitMUS struct{}

func (unitMUS) Marshal(u core.RetrievableUnit, bs []byte) (n int) {
	n = varint.Uint64.Marshal(uint64(u.ID), bs)
	n += varint.Int.Marshal(int(u.Type), bs[n:])
	n += varint.Int.Marshal(int(u.SourceRecord), bs[n:])
	n += ord.String.Marshal(u.RecordName, bs[n:])
	n += ord.String.Marshal(u.Detail, bs[n:])
	n += ord.String.Marshal(u.Text, bs[n:])
	return
}

func (unitMUS) Unmarshal(bs []byte) (u core.RetrievableUnit, n int, err error) {
	var (
		n1   int
		id   uint64
		num  int
		text string
	)
	id, n, err = varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	u.ID = core.UnitID(id)

	num, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	u.Type = core.UnitType(num)

	num, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	u.SourceRecord = core.RecordID(num)

	text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	u.RecordName = text

	text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	u.Detail = text

	text, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	u.Text = text
	return
}

func (unitMUS) Size(u core.RetrievableUnit) (size int) {
	size = varint.Uint64.Size(uint64(u.ID))
	size += varint.Int.Size(int(u.Type))
	size += varint.Int.Size(int(u.SourceRecord))
	size += ord.String.Size(u.RecordName)
	size += ord.String.Size(u.Detail)
	size += ord.String.Size(u.Text)
	return
}

func (unitMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = varint.Uint64.Skip(bs)
	if err != nil {
		return
	}
	for range 2 {
		n1, err = varint.Int.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	for range 3 {
		n1, err = ord.String.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

// IndexedVectorMUS implements MUS serialization for IndexedVector.
var IndexedVectorMUS = indexedVectorMUS{}

type indexedVectorMUS struct{}

func (indexedVectorMUS) Marshal(v IndexedVector, bs []byte) (n int) {
	n = UnitMUS.Marshal(v.Unit, bs)
	n += float32SliceMUS.Marshal(v.Vector, bs[n:])
	return
}

func (indexedVectorMUS) Unmarshal(bs []byte) (v IndexedVector, n int, err error) {
	var n1 int
	v.Unit, n, err = UnitMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	v.Vector, n1, err = float32SliceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (indexedVectorMUS) Size(v IndexedVector) (size int) {
	size = UnitMUS.Size(v.Unit)
	size += float32SliceMUS.Size(v.Vector)
	return
}

func (indexedVectorMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = UnitMUS.Skip(bs)
	if err != nil {
		return
	}
	n1, err = float32SliceMUS.Skip(bs[n:])
	n += n1
	return
}

// ManifestMUS implements MUS serialization for Manifest.
var ManifestMUS = manifestMUS{}

type manifestMUS struct{}

func (manifestMUS) Marshal(m Manifest, bs []byte) (n int) {
	n = ord.String.Marshal(m.Model, bs)
	n += varint.Int.Marshal(m.Dimension, bs[n:])
	n += varint.Int.Marshal(m.UnitCount, bs[n:])
	return
}

func (manifestMUS) Unmarshal(bs []byte) (m Manifest, n int, err error) {
	var n1 int
	m.Model, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	m.Dimension, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	m.UnitCount, n1, err = varint.Int.Unmarshal(bs[n:])
	n += n1
	return
}

func (manifestMUS) Size(m Manifest) (size int) {
	size = ord.String.Size(m.Model)
	size += varint.Int.Size(m.Dimension)
	size += varint.Int.Size(m.UnitCount)
	return
}

func (manifestMUS) Skip(bs []byte) (n int, err error) {
	var n1 int
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	for range 2 {
		n1, err = varint.Int.Skip(bs[n:])
		n += n1
		if err != nil {
			return
		}
	}
	return
}

// MarshalIndexedVector serializes an IndexedVector to bytes.
func MarshalIndexedVector(v IndexedVector) []byte {
	buf := make([]byte, IndexedVectorMUS.Size(v))
	IndexedVectorMUS.Marshal(v, buf)
	return buf
}

// UnmarshalIndexedVector deserializes an IndexedVector from bytes.
func UnmarshalIndexedVector(data []byte) (IndexedVector, error) {
	v, _, err := IndexedVectorMUS.Unmarshal(data)
	return v, err
}

// MarshalManifest serializes a Manifest to bytes.
func MarshalManifest(m Manifest) []byte {
	buf := make([]byte, ManifestMUS.Size(m))
	ManifestMUS.Marshal(m, buf)
	return buf
}

// UnmarshalManifest deserializes a Manifest from bytes.
func UnmarshalManifest(data []byte) (Manifest, error) {
	m, _, err := ManifestMUS.Unmarshal(data)
	return m, err
}
