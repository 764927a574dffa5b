package snapshot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/xenbackup/xenbackup/pkg/entities"
	"github.com/xenbackup/xenbackup/pkg/xapi"
	"github.com/xenbackup/xenbackup/pkg/xapi/iface"
)

func TestName(t *testing.T) {
	assert.Equal(t, "__backup__base", Name(KindBase, "my-vm"))
	assert.Equal(t, "__backup__full_tmp__my-vm", Name(KindFullTmp, "my-vm"))
	assert.Equal(t, "__backup__delta_tmp__my-vm", Name(KindDeltaTmp, "my-vm"))
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindBase, kindOf("__backup__base"))
	assert.Equal(t, KindDeltaTmp, kindOf("__backup__delta_tmp__my-vm"))
	assert.Equal(t, Kind(""), kindOf("some other snapshot"))
}

func TestFindBase_None(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := iface.NewMockGateway(ctrl)
	ctx := context.Background()
	vmRef := xapi.Ref("OpaqueRef:vm1")

	gw.EXPECT().GetVMRecord(ctx, vmRef).Return(entities.VM{Ref: vmRef}, nil)

	found, err := FindBase(ctx, gw, vmRef)
	require.NoError(t, err)
	assert.Nil(t, found)
}

func TestFindBase_Single(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := iface.NewMockGateway(ctrl)
	ctx := context.Background()
	vmRef := xapi.Ref("OpaqueRef:vm1")
	baseRef := xapi.Ref("OpaqueRef:snap1")

	gw.EXPECT().GetVMRecord(ctx, vmRef).Return(entities.VM{Ref: vmRef, Snapshots: []xapi.Ref{baseRef}}, nil)
	gw.EXPECT().GetVMRecord(ctx, baseRef).Return(entities.VM{Ref: baseRef, NameLabel: "__backup__base"}, nil)

	found, err := FindBase(ctx, gw, vmRef)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, baseRef, found.Ref)
}

func TestFindBase_MoreThanOneIsAnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	gw := iface.NewMockGateway(ctrl)
	ctx := context.Background()
	vmRef := xapi.Ref("OpaqueRef:vm1")
	s1, s2 := xapi.Ref("OpaqueRef:s1"), xapi.Ref("OpaqueRef:s2")

	gw.EXPECT().GetVMRecord(ctx, vmRef).Return(entities.VM{Ref: vmRef, Snapshots: []xapi.Ref{s1, s2}}, nil)
	gw.EXPECT().GetVMRecord(ctx, s1).Return(entities.VM{Ref: s1, NameLabel: "__backup__base"}, nil)
	gw.EXPECT().GetVMRecord(ctx, s2).Return(entities.VM{Ref: s2, NameLabel: "__backup__base"}, nil)

	_, err := FindBase(ctx, gw, vmRef)
	assert.Error(t, err)
}
