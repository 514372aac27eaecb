// internal/writer/types.go
package writer

// StatusPlan says where one processor's boot status block lives.
type StatusPlan struct {
	Endpoint string
	UnitID   uint8
	BaseSlot uint16 // block index; register address = BaseSlot * SlotsPerProcessor
	Name     string // processor name written into the block's name slots
}

// Plan is the fully-built downlink plan for one monitored processor.
type Plan struct {
	Processor string
	Transport string
	Status    *StatusPlan
}

// endpointClient is the exact contract the status writer uses.
// IMPORTANT: There must be NO other version of this interface anywhere.
type endpointClient interface {
	WriteRegisters(unitID uint8, addr uint16, regs []uint16) error
}
