// Copyright (c) 2025 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaults(t *testing.T) AttrList {
	t.Helper()
	var al AttrList
	require.NoError(t, al.Set("key,variant,value"))
	return al
}

func TestAttrList_Set(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		want    AttrList
		wantErr bool
	}{
		{
			name:  "empty keeps defaults",
			value: "",
			want: AttrList{
				{Key: "key", Include: true, OutputKey: "key"},
				{Key: "variant", Include: true, OutputKey: "variant"},
				{Key: "value", Include: true, OutputKey: "value"},
			},
		},
		{
			name:  "exclude a default",
			value: "!variant",
			want: AttrList{
				{Key: "key", Include: true, OutputKey: "key"},
				{Key: "variant", Include: false, OutputKey: "variant"},
				{Key: "value", Include: true, OutputKey: "value"},
			},
		},
		{
			name:  "rename and transform",
			value: "key:name:l,labels",
			want: AttrList{
				{Key: "key", Include: true, OutputKey: "name", TransformSpec: "l"},
				{Key: "variant", Include: true, OutputKey: "variant"},
				{Key: "value", Include: true, OutputKey: "value"},
				{Key: "labels", Include: true, OutputKey: "labels"},
			},
		},
		{
			name:    "too many fields",
			value:   "key:a:b:c",
			wantErr: true,
		},
		{
			name:    "bare bang",
			value:   "!",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			al := defaults(t)
			err := al.Set(tt.value)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, al)
		})
	}
}

func TestAttr_Transform(t *testing.T) {
	tests := []struct {
		name  string
		spec  string
		input any
		want  any
	}{
		{name: "no spec", spec: "", input: "Proto", want: "Proto"},
		{name: "upper", spec: "U", input: "Proto", want: "PROTO"},
		{name: "lower", spec: "l", input: "Proto", want: "proto"},
		{name: "last case wins", spec: "U,l", input: "Proto", want: "proto"},
		{name: "truncate", spec: "3", input: "PROTOTYPE_1", want: "PRO"},
		{name: "short enough", spec: "20", input: "PROTOTYPE_1", want: "PROTOTYPE_1"},
		{name: "elide middle", spec: "-8", input: "PROTOTYPE_1", want: "PRO..E_1"},
		{name: "case and length", spec: "l5", input: "PROTOTYPE_1", want: "proto"},
		{name: "non string untouched", spec: "U3", input: 12345, want: 12345},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Attr{TransformSpec: tt.spec}
			assert.Equal(t, tt.want, a.Transform(tt.input))
		})
	}
}

func TestAttrList_SetGlobalTransformSpec(t *testing.T) {
	al := defaults(t)
	require.NoError(t, al.Set("*::U,key::l"))
	al.SetGlobalTransformSpec()

	assert.Equal(t, "U,l", al[0].TransformSpec)
	assert.Equal(t, "U,", al[1].TransformSpec)

	key := al[0]
	assert.Equal(t, "proto", key.Transform("Proto"))
	variant := al[1]
	assert.Equal(t, "A", variant.Transform("a"))
}

func TestAttrList_Included(t *testing.T) {
	al := defaults(t)
	require.NoError(t, al.Set("!value,*::U"))

	got := al.Included()
	require.Len(t, got, 2)
	assert.Equal(t, "key", got[0].Key)
	assert.Equal(t, "variant", got[1].Key)
}

func TestAttrList_String(t *testing.T) {
	var al AttrList
	require.NoError(t, al.Set("key:name:U,extra"))
	assert.Equal(t, "key:name:U,extra:extra:", al.String())
}

func TestAttrList_Validate(t *testing.T) {
	al := defaults(t)
	require.NoError(t, al.Set("*::l"))
	assert.NoError(t, al.Validate("key", "variant", "value"))

	require.NoError(t, al.Set("bogus"))
	err := al.Validate("key", "variant", "value")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bogus")
}
