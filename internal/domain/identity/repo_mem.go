package identity

// memoryRepository keeps patients in process memory, in registration order.
// Records are held behind stable pointers so a handle returned from GetByID
// is never invalidated by later registrations.
type memoryRepository struct {
	patients []*Patient
	byID     map[int]*Patient
	lastID   int
}

// NewMemoryRepository returns an empty in-memory patient store. The first
// assigned identifier is 1.
func NewMemoryRepository() PatientRepository {
	return &memoryRepository{byID: make(map[int]*Patient)}
}

func (r *memoryRepository) Create(name string, age int, gender, symptoms, admissionDate string) (*Patient, error) {
	r.lastID++
	p := NewPatient(r.lastID, name, age, gender, symptoms, admissionDate)
	r.patients = append(r.patients, p)
	r.byID[p.ID] = p
	return p, nil
}

func (r *memoryRepository) GetByID(id int) (*Patient, error) {
	p, ok := r.byID[id]
	if !ok {
		return nil, ErrNotFound
	}
	return p, nil
}

func (r *memoryRepository) List() []*Patient {
	out := make([]*Patient, len(r.patients))
	copy(out, r.patients)
	return out
}
