package chip8

// ExecResult tells Step how to move the program counter after an instruction.
type ExecResult int

const (
	Advance ExecResult = iota // PC += 2
	Skip                      // PC += 4
	Jumped                    // PC already set
	Wait                      // PC unchanged, retry on the next cycle
)

func (r ExecResult) String() string {
	switch r {
	case Advance:
		return "advance"
	case Skip:
		return "skip"
	case Jumped:
		return "jumped"
	case Wait:
		return "wait"
	}
	return "unknown"
}

// Trace describes one Step for an Observer. Instruction is only valid when
// Decoded is set.
type Trace struct {
	PC          uint16
	Word        uint16
	Instruction Instruction
	Decoded     bool
	Result      ExecResult
	Err         error
}

// Observer is notified after every Step, whether or not it failed.
type Observer interface {
	Step(m *Machine, t Trace)
}

// Machine is a complete CHIP-8: registers, memory, screen and keypad.
type Machine struct {
	CPU     *CPU
	Memory  *Memory
	Display *Display
	Keypad  *Keypad

	observer Observer
}

// New returns a Machine with an empty program area and PC at ProgramStart.
func New() *Machine {
	return &Machine{
		CPU:     NewCPU(),
		Memory:  NewMemory(),
		Display: NewDisplay(),
		Keypad:  new(Keypad),
	}
}

// Reset returns every component to its power-on state. The random source
// and observer are kept.
func (m *Machine) Reset() {
	m.CPU.reset()
	m.Memory.Reset()
	m.Display.Clear()
	m.Keypad.ReleaseAll()
}

// LoadProgram resets the machine and copies program to ProgramStart.
func (m *Machine) LoadProgram(program []uint8) error {
	m.Reset()
	if err := m.Memory.Load(ProgramStart, program); err != nil {
		return err
	}
	return m.CPU.SetProgramCounter(ProgramStart)
}

func (m *Machine) SetObserver(o Observer) {
	m.observer = o
}

func (m *Machine) Seed(seed int64) {
	m.CPU.Seed(seed)
}

func (m *Machine) TickTimers() {
	m.CPU.TickTimers()
}

func (m *Machine) IsSoundPlaying() bool {
	return m.CPU.SoundTimer() > 0
}

func (m *Machine) SetKeyState(key uint8, pressed bool) error {
	return m.Keypad.SetState(key, pressed)
}

func (m *Machine) DisplayState() Grid {
	return m.Display.State()
}

// DisplaySnapshot returns the screen and true only if it changed since the
// previous snapshot.
func (m *Machine) DisplaySnapshot() (Grid, bool) {
	return m.Display.Snapshot()
}

// Step runs one fetch-decode-execute cycle. On error the program counter is
// left where the cycle started and the error is returned as an *Error.
func (m *Machine) Step() error {
	t := Trace{PC: m.CPU.pc}

	if err := m.step(&t); err != nil {
		m.CPU.pc = t.PC
		t.Err = &Error{PC: t.PC, Word: t.Word, Err: err}
	}

	if m.observer != nil {
		m.observer.Step(m, t)
	}
	return t.Err
}

func (m *Machine) step(t *Trace) error {
	word, err := m.Memory.Word(t.PC)
	if err != nil {
		return err
	}
	t.Word = word

	inst, err := Decode(word)
	if err != nil {
		return err
	}
	t.Instruction = inst
	t.Decoded = true

	res, err := m.execute(inst)
	if err != nil {
		return err
	}
	t.Result = res

	switch res {
	case Advance:
		return m.CPU.AdvanceProgramCounter(2)
	case Skip:
		return m.CPU.AdvanceProgramCounter(4)
	}
	return nil
}

func skipIf(cond bool) ExecResult {
	if cond {
		return Skip
	}
	return Advance
}

func flag(cond bool) uint8 {
	if cond {
		return 1
	}
	return 0
}

func (m *Machine) execute(inst Instruction) (ExecResult, error) {
	c := m.CPU
	vx := c.Reg(inst.X)
	vy := c.Reg(inst.Y)
	vf := c.Reg(VF)

	switch inst.Op {
	case OpSys:
		return 0, ErrUnsupportedInstruction

	case OpCls:
		m.Display.Clear()

	case OpRet:
		// The stack holds the address of the call itself, so the usual
		// advance steps past it.
		addr, err := c.Pop()
		if err != nil {
			return 0, err
		}
		if err := c.SetProgramCounter(addr); err != nil {
			return 0, err
		}

	case OpJump:
		c.pc = inst.Addr.v
		return Jumped, nil

	case OpCall:
		if err := c.Push(c.pc); err != nil {
			return 0, err
		}
		c.pc = inst.Addr.v
		return Jumped, nil

	case OpJumpV0:
		if err := c.SetProgramCounter(inst.Addr.v + uint16(*c.Reg(V0))); err != nil {
			return 0, err
		}
		return Jumped, nil

	case OpSkipEqByte:
		return skipIf(*vx == inst.Byte), nil
	case OpSkipNeByte:
		return skipIf(*vx != inst.Byte), nil
	case OpSkipEqReg:
		return skipIf(*vx == *vy), nil
	case OpSkipNeReg:
		return skipIf(*vx != *vy), nil

	case OpLoadByte:
		*vx = inst.Byte
	case OpAddByte:
		*vx += inst.Byte

	case OpMove:
		*vx = *vy
	case OpOr:
		*vx |= *vy
	case OpAnd:
		*vx &= *vy
	case OpXor:
		*vx ^= *vy

	// The flag is written last, so VF as a destination ends up holding it.
	case OpAdd:
		x, y := *vx, *vy
		*vx = x + y
		*vf = flag(uint16(x)+uint16(y) > 0xFF)
	case OpSub:
		x, y := *vx, *vy
		*vx = x - y
		*vf = flag(x >= y)
	case OpSubReverse:
		x, y := *vx, *vy
		*vx = y - x
		*vf = flag(y >= x)

	// VY is ignored: the shift applies to VX in place.
	case OpShiftRight:
		x := *vx
		*vx = x >> 1
		*vf = x & 0x01
	case OpShiftLeft:
		x := *vx
		*vx = x << 1
		*vf = x >> 7

	case OpLoadI:
		c.i = inst.Addr.v
	case OpAddI:
		if err := c.AdvanceAddress(uint16(*vx)); err != nil {
			return 0, err
		}

	case OpRand:
		*vx = c.Random() & inst.Byte

	case OpDraw:
		rows := make([]uint8, inst.Height.n)
		for i := range rows {
			b, err := m.Memory.Byte(c.i + uint16(i))
			if err != nil {
				return 0, err
			}
			rows[i] = b
		}
		collided, err := m.Display.DrawSprite(rows, *vx, *vy)
		if err != nil {
			return 0, err
		}
		*vf = flag(collided)

	case OpSkipKey:
		down, err := m.Keypad.IsPressed(*vx)
		if err != nil {
			return 0, err
		}
		return skipIf(down), nil
	case OpSkipNotKey:
		down, err := m.Keypad.IsPressed(*vx)
		if err != nil {
			return 0, err
		}
		return skipIf(!down), nil
	case OpWaitKey:
		key, ok := m.Keypad.AnyPressed()
		if !ok {
			return Wait, nil
		}
		*vx = key

	case OpGetDelay:
		*vx = c.DelayTimer()
	case OpSetDelay:
		c.SetDelayTimer(*vx)
	case OpSetSound:
		c.SetSoundTimer(*vx)

	case OpFont:
		addr, err := m.Memory.SpriteAddress(*vx)
		if err != nil {
			return 0, err
		}
		if err := c.SetAddress(addr); err != nil {
			return 0, err
		}

	case OpBCD:
		v := *vx
		if err := m.Memory.Load(c.i, []uint8{v / 100, (v / 10) % 10, v % 10}); err != nil {
			return 0, err
		}

	case OpStoreRegs:
		if err := m.Memory.Load(c.i, c.regs[:inst.X.n+1]); err != nil {
			return 0, err
		}
	case OpLoadRegs:
		for n := uint16(0); n <= uint16(inst.X.n); n++ {
			b, err := m.Memory.Byte(c.i + n)
			if err != nil {
				return 0, err
			}
			c.regs[n] = b
		}

	default:
		return 0, &DecodeError{inst.Encode()}
	}

	return Advance, nil
}
