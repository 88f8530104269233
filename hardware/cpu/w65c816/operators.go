// This file is part of Gophercores.
//
// Gophercores is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gophercores is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gophercores.  If not, see <https://www.gnu.org/licenses/>.

package w65c816

// List of instruction operators. These are the values of the Operator field
// in the instruction definitions.
const (
	ADC = "ADC"
	AND = "AND"
	ASL = "ASL"
	BCC = "BCC"
	BCS = "BCS"
	BEQ = "BEQ"
	BIT = "BIT"
	BMI = "BMI"
	BNE = "BNE"
	BPL = "BPL"
	BRA = "BRA"
	BRK = "BRK"
	BRL = "BRL"
	BVC = "BVC"
	BVS = "BVS"
	CLC = "CLC"
	CLD = "CLD"
	CLI = "CLI"
	CLV = "CLV"
	CMP = "CMP"
	COP = "COP"
	CPX = "CPX"
	CPY = "CPY"
	DEC = "DEC"
	DEX = "DEX"
	DEY = "DEY"
	EOR = "EOR"
	INC = "INC"
	INX = "INX"
	INY = "INY"
	JML = "JML"
	JMP = "JMP"
	JSL = "JSL"
	JSR = "JSR"
	LDA = "LDA"
	LDX = "LDX"
	LDY = "LDY"
	LSR = "LSR"
	MVN = "MVN"
	MVP = "MVP"
	NOP = "NOP"
	ORA = "ORA"
	PEA = "PEA"
	PEI = "PEI"
	PER = "PER"
	PHA = "PHA"
	PHB = "PHB"
	PHD = "PHD"
	PHK = "PHK"
	PHP = "PHP"
	PHX = "PHX"
	PHY = "PHY"
	PLA = "PLA"
	PLB = "PLB"
	PLD = "PLD"
	PLP = "PLP"
	PLX = "PLX"
	PLY = "PLY"
	REP = "REP"
	ROL = "ROL"
	ROR = "ROR"
	RTI = "RTI"
	RTL = "RTL"
	RTS = "RTS"
	SBC = "SBC"
	SEC = "SEC"
	SED = "SED"
	SEI = "SEI"
	SEP = "SEP"
	STA = "STA"
	STP = "STP"
	STX = "STX"
	STY = "STY"
	STZ = "STZ"
	TAX = "TAX"
	TAY = "TAY"
	TCD = "TCD"
	TCS = "TCS"
	TDC = "TDC"
	TRB = "TRB"
	TSB = "TSB"
	TSC = "TSC"
	TSX = "TSX"
	TXA = "TXA"
	TXS = "TXS"
	TXY = "TXY"
	TYA = "TYA"
	TYX = "TYX"
	WAI = "WAI"
	WDM = "WDM"
	XBA = "XBA"
	XCE = "XCE"
)
