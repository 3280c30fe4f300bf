// Package pb holds the wire messages of the topology master and of the
// PlanService. The types are kept in sync with plan.proto by hand and rely on
// the reflection based codec of github.com/golang/protobuf.
package pb

import (
	"fmt"

	"github.com/golang/protobuf/proto"
)

type Role int32

const (
	Role_ALL    Role = 0
	Role_SPOUTS Role = 1
	Role_BOLTS  Role = 2
)

var Role_name = map[int32]string{
	0: "ALL",
	1: "SPOUTS",
	2: "BOLTS",
}

var Role_value = map[string]int32{
	"ALL":    0,
	"SPOUTS": 1,
	"BOLTS":  2,
}

func (x Role) String() string {
	if s, ok := Role_name[int32(x)]; ok {
		return s
	}
	return fmt.Sprintf("Role(%d)", int32(x))
}

type TMasterLocation struct {
	TopologyName         string   `protobuf:"bytes,1,opt,name=topology_name,json=topologyName,proto3" json:"topology_name,omitempty"`
	TopologyId           string   `protobuf:"bytes,2,opt,name=topology_id,json=topologyId,proto3" json:"topology_id,omitempty"`
	Host                 string   `protobuf:"bytes,3,opt,name=host,proto3" json:"host,omitempty"`
	ControllerPort       int32    `protobuf:"varint,4,opt,name=controller_port,json=controllerPort,proto3" json:"controller_port,omitempty"`
	MasterPort           int32    `protobuf:"varint,5,opt,name=master_port,json=masterPort,proto3" json:"master_port,omitempty"`
	StatsPort            int32    `protobuf:"varint,6,opt,name=stats_port,json=statsPort,proto3" json:"stats_port,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *TMasterLocation) Reset()         { *m = TMasterLocation{} }
func (m *TMasterLocation) String() string { return proto.CompactTextString(m) }
func (*TMasterLocation) ProtoMessage()    {}

func (m *TMasterLocation) GetTopologyName() string {
	if m != nil {
		return m.TopologyName
	}
	return ""
}

func (m *TMasterLocation) GetTopologyId() string {
	if m != nil {
		return m.TopologyId
	}
	return ""
}

func (m *TMasterLocation) GetHost() string {
	if m != nil {
		return m.Host
	}
	return ""
}

func (m *TMasterLocation) GetControllerPort() int32 {
	if m != nil {
		return m.ControllerPort
	}
	return 0
}

func (m *TMasterLocation) GetMasterPort() int32 {
	if m != nil {
		return m.MasterPort
	}
	return 0
}

func (m *TMasterLocation) GetStatsPort() int32 {
	if m != nil {
		return m.StatsPort
	}
	return 0
}

type Component struct {
	Name                 string   `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Spec                 string   `protobuf:"bytes,2,opt,name=spec,proto3" json:"spec,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Component) Reset()         { *m = Component{} }
func (m *Component) String() string { return proto.CompactTextString(m) }
func (*Component) ProtoMessage()    {}

func (m *Component) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Component) GetSpec() string {
	if m != nil {
		return m.Spec
	}
	return ""
}

type Spout struct {
	Comp                 *Component `protobuf:"bytes,1,opt,name=comp,proto3" json:"comp,omitempty"`
	XXX_NoUnkeyedLiteral struct{}   `json:"-"`
	XXX_unrecognized     []byte     `json:"-"`
	XXX_sizecache        int32      `json:"-"`
}

func (m *Spout) Reset()         { *m = Spout{} }
func (m *Spout) String() string { return proto.CompactTextString(m) }
func (*Spout) ProtoMessage()    {}

func (m *Spout) GetComp() *Component {
	if m != nil {
		return m.Comp
	}
	return nil
}

type Bolt struct {
	Comp                 *Component `protobuf:"bytes,1,opt,name=comp,proto3" json:"comp,omitempty"`
	XXX_NoUnkeyedLiteral struct{}   `json:"-"`
	XXX_unrecognized     []byte     `json:"-"`
	XXX_sizecache        int32      `json:"-"`
}

func (m *Bolt) Reset()         { *m = Bolt{} }
func (m *Bolt) String() string { return proto.CompactTextString(m) }
func (*Bolt) ProtoMessage()    {}

func (m *Bolt) GetComp() *Component {
	if m != nil {
		return m.Comp
	}
	return nil
}

type Topology struct {
	Id                   string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	Name                 string   `protobuf:"bytes,2,opt,name=name,proto3" json:"name,omitempty"`
	Spouts               []*Spout `protobuf:"bytes,3,rep,name=spouts,proto3" json:"spouts,omitempty"`
	Bolts                []*Bolt  `protobuf:"bytes,4,rep,name=bolts,proto3" json:"bolts,omitempty"`
	State                int32    `protobuf:"varint,5,opt,name=state,proto3" json:"state,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *Topology) Reset()         { *m = Topology{} }
func (m *Topology) String() string { return proto.CompactTextString(m) }
func (*Topology) ProtoMessage()    {}

func (m *Topology) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *Topology) GetName() string {
	if m != nil {
		return m.Name
	}
	return ""
}

func (m *Topology) GetSpouts() []*Spout {
	if m != nil {
		return m.Spouts
	}
	return nil
}

func (m *Topology) GetBolts() []*Bolt {
	if m != nil {
		return m.Bolts
	}
	return nil
}

func (m *Topology) GetState() int32 {
	if m != nil {
		return m.State
	}
	return 0
}

type StMgr struct {
	Id                   string   `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	HostName             string   `protobuf:"bytes,2,opt,name=host_name,json=hostName,proto3" json:"host_name,omitempty"`
	DataPort             int32    `protobuf:"varint,3,opt,name=data_port,json=dataPort,proto3" json:"data_port,omitempty"`
	LocalEndpoint        string   `protobuf:"bytes,4,opt,name=local_endpoint,json=localEndpoint,proto3" json:"local_endpoint,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *StMgr) Reset()         { *m = StMgr{} }
func (m *StMgr) String() string { return proto.CompactTextString(m) }
func (*StMgr) ProtoMessage()    {}

func (m *StMgr) GetId() string {
	if m != nil {
		return m.Id
	}
	return ""
}

func (m *StMgr) GetHostName() string {
	if m != nil {
		return m.HostName
	}
	return ""
}

func (m *StMgr) GetDataPort() int32 {
	if m != nil {
		return m.DataPort
	}
	return 0
}

type InstanceInfo struct {
	TaskId               int32    `protobuf:"varint,1,opt,name=task_id,json=taskId,proto3" json:"task_id,omitempty"`
	ComponentIndex       int32    `protobuf:"varint,2,opt,name=component_index,json=componentIndex,proto3" json:"component_index,omitempty"`
	ComponentName        string   `protobuf:"bytes,3,opt,name=component_name,json=componentName,proto3" json:"component_name,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *InstanceInfo) Reset()         { *m = InstanceInfo{} }
func (m *InstanceInfo) String() string { return proto.CompactTextString(m) }
func (*InstanceInfo) ProtoMessage()    {}

func (m *InstanceInfo) GetTaskId() int32 {
	if m != nil {
		return m.TaskId
	}
	return 0
}

func (m *InstanceInfo) GetComponentName() string {
	if m != nil {
		return m.ComponentName
	}
	return ""
}

type Instance struct {
	InstanceId           string        `protobuf:"bytes,1,opt,name=instance_id,json=instanceId,proto3" json:"instance_id,omitempty"`
	StmgrId              string        `protobuf:"bytes,2,opt,name=stmgr_id,json=stmgrId,proto3" json:"stmgr_id,omitempty"`
	Info                 *InstanceInfo `protobuf:"bytes,3,opt,name=info,proto3" json:"info,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *Instance) Reset()         { *m = Instance{} }
func (m *Instance) String() string { return proto.CompactTextString(m) }
func (*Instance) ProtoMessage()    {}

func (m *Instance) GetInstanceId() string {
	if m != nil {
		return m.InstanceId
	}
	return ""
}

func (m *Instance) GetStmgrId() string {
	if m != nil {
		return m.StmgrId
	}
	return ""
}

func (m *Instance) GetInfo() *InstanceInfo {
	if m != nil {
		return m.Info
	}
	return nil
}

type PhysicalPlan struct {
	Topology             *Topology   `protobuf:"bytes,1,opt,name=topology,proto3" json:"topology,omitempty"`
	Stmgrs               []*StMgr    `protobuf:"bytes,2,rep,name=stmgrs,proto3" json:"stmgrs,omitempty"`
	Instances            []*Instance `protobuf:"bytes,3,rep,name=instances,proto3" json:"instances,omitempty"`
	XXX_NoUnkeyedLiteral struct{}    `json:"-"`
	XXX_unrecognized     []byte      `json:"-"`
	XXX_sizecache        int32       `json:"-"`
}

func (m *PhysicalPlan) Reset()         { *m = PhysicalPlan{} }
func (m *PhysicalPlan) String() string { return proto.CompactTextString(m) }
func (*PhysicalPlan) ProtoMessage()    {}

func (m *PhysicalPlan) GetTopology() *Topology {
	if m != nil {
		return m.Topology
	}
	return nil
}

func (m *PhysicalPlan) GetStmgrs() []*StMgr {
	if m != nil {
		return m.Stmgrs
	}
	return nil
}

func (m *PhysicalPlan) GetInstances() []*Instance {
	if m != nil {
		return m.Instances
	}
	return nil
}

type NamesRequest struct {
	Role                 Role     `protobuf:"varint,1,opt,name=role,proto3,enum=planwatch.Role" json:"role,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *NamesRequest) Reset()         { *m = NamesRequest{} }
func (m *NamesRequest) String() string { return proto.CompactTextString(m) }
func (*NamesRequest) ProtoMessage()    {}

func (m *NamesRequest) GetRole() Role {
	if m != nil {
		return m.Role
	}
	return Role_ALL
}

type NamesReply struct {
	Names                []string `protobuf:"bytes,1,rep,name=names,proto3" json:"names,omitempty"`
	Stale                bool     `protobuf:"varint,2,opt,name=stale,proto3" json:"stale,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *NamesReply) Reset()         { *m = NamesReply{} }
func (m *NamesReply) String() string { return proto.CompactTextString(m) }
func (*NamesReply) ProtoMessage()    {}

func (m *NamesReply) GetNames() []string {
	if m != nil {
		return m.Names
	}
	return nil
}

func (m *NamesReply) GetStale() bool {
	if m != nil {
		return m.Stale
	}
	return false
}

type PlanRequest struct {
	RequireFresh         bool     `protobuf:"varint,1,opt,name=require_fresh,json=requireFresh,proto3" json:"require_fresh,omitempty"`
	XXX_NoUnkeyedLiteral struct{} `json:"-"`
	XXX_unrecognized     []byte   `json:"-"`
	XXX_sizecache        int32    `json:"-"`
}

func (m *PlanRequest) Reset()         { *m = PlanRequest{} }
func (m *PlanRequest) String() string { return proto.CompactTextString(m) }
func (*PlanRequest) ProtoMessage()    {}

func (m *PlanRequest) GetRequireFresh() bool {
	if m != nil {
		return m.RequireFresh
	}
	return false
}

type PlanReply struct {
	Plan                 *PhysicalPlan `protobuf:"bytes,1,opt,name=plan,proto3" json:"plan,omitempty"`
	Fingerprint          uint64        `protobuf:"varint,2,opt,name=fingerprint,proto3" json:"fingerprint,omitempty"`
	FetchedAtUnixNano    int64         `protobuf:"varint,3,opt,name=fetched_at_unix_nano,json=fetchedAtUnixNano,proto3" json:"fetched_at_unix_nano,omitempty"`
	Stale                bool          `protobuf:"varint,4,opt,name=stale,proto3" json:"stale,omitempty"`
	XXX_NoUnkeyedLiteral struct{}      `json:"-"`
	XXX_unrecognized     []byte        `json:"-"`
	XXX_sizecache        int32         `json:"-"`
}

func (m *PlanReply) Reset()         { *m = PlanReply{} }
func (m *PlanReply) String() string { return proto.CompactTextString(m) }
func (*PlanReply) ProtoMessage()    {}

func (m *PlanReply) GetPlan() *PhysicalPlan {
	if m != nil {
		return m.Plan
	}
	return nil
}

func (m *PlanReply) GetFingerprint() uint64 {
	if m != nil {
		return m.Fingerprint
	}
	return 0
}

func (m *PlanReply) GetFetchedAtUnixNano() int64 {
	if m != nil {
		return m.FetchedAtUnixNano
	}
	return 0
}

func (m *PlanReply) GetStale() bool {
	if m != nil {
		return m.Stale
	}
	return false
}

func init() {
	proto.RegisterEnum("planwatch.Role", Role_name, Role_value)
	proto.RegisterType((*TMasterLocation)(nil), "planwatch.TMasterLocation")
	proto.RegisterType((*Component)(nil), "planwatch.Component")
	proto.RegisterType((*Spout)(nil), "planwatch.Spout")
	proto.RegisterType((*Bolt)(nil), "planwatch.Bolt")
	proto.RegisterType((*Topology)(nil), "planwatch.Topology")
	proto.RegisterType((*StMgr)(nil), "planwatch.StMgr")
	proto.RegisterType((*InstanceInfo)(nil), "planwatch.InstanceInfo")
	proto.RegisterType((*Instance)(nil), "planwatch.Instance")
	proto.RegisterType((*PhysicalPlan)(nil), "planwatch.PhysicalPlan")
	proto.RegisterType((*NamesRequest)(nil), "planwatch.NamesRequest")
	proto.RegisterType((*NamesReply)(nil), "planwatch.NamesReply")
	proto.RegisterType((*PlanRequest)(nil), "planwatch.PlanRequest")
	proto.RegisterType((*PlanReply)(nil), "planwatch.PlanReply")
}
