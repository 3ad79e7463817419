// This file is part of nanosim.
//
// nanosim is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// nanosim is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with nanosim.  If not, see <https://www.gnu.org/licenses/>.

// Package memory runs two models of the main memory side by side and flags
// any divergence between them.
//
// The SDRAM type is a model of the banked memory device as it is seen by the
// memory controller under test. Rows are opened with an ACTIVE command and
// columns are then read or written with individual byte lanes masked by the
// DQM lines.
//
// The SRAM type is a flat, linearly addressed memory that bypasses the
// controller entirely. It is what the CPU expects memory to look like.
//
// Both models implement the Memory interface, which uses 16-bit word
// addresses. The Checked type decorates one Memory with a comparison against
// the SDRAM, which means every access made by the CPU can be checked against
// what the controller has done to the SDRAM.
//
// The Verifier type decodes the memory bus signals and drives the two models.
// It is entirely passive and never changes the behaviour of the simulation.
package memory
