// internal/status/constants.go
package status

// Boot Status Block layout constants.
// These values define the downlink protocol and MUST NOT be configurable.

// ---- BLOCK GEOMETRY ----

// SlotsPerProcessor is the fixed number of holding registers per processor.
const SlotsPerProcessor = 12

// ---- SLOT INDICES ----

// SlotResetType holds the raw reset type code as observed.
const SlotResetType = 0

// SlotResetSubtype holds the raw reset subtype code as observed.
const SlotResetSubtype = 1

// SlotHealthCode holds the classification health.
const SlotHealthCode = 2

// ---- RESERVED RANGE ----

// Slot 3 is reserved.
const SlotReservedStart = 3
const SlotReservedEnd = 3

// ---- PROCESSOR NAME ----

// SlotNameStart is the first slot used for the processor name.
// The name always sits at the END of the block.
const SlotNameStart = 4

// SlotNameSlots is the number of slots reserved for the processor name.
const SlotNameSlots = 8

// SlotNameEnd is the last slot used for the name (inclusive).
const SlotNameEnd = SlotNameStart + SlotNameSlots - 1

// ---- LIMITS ----

// NameMaxChars is the maximum number of ASCII characters stored for the name.
const NameMaxChars = 16

// ---- HEALTH CODES ----

// HealthUnknown is the state before the first read.
const HealthUnknown uint16 = 0

// HealthOK means both reset fields classified.
const HealthOK uint16 = 1

// HealthAnomaly means a raw code fell outside the taxonomy.
// The raw codes are still published verbatim.
const HealthAnomaly uint16 = 2

// HealthUnreachable means the reset registers could not be read.
const HealthUnreachable uint16 = 3
