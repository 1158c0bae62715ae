package service

import (
	"context"
	"sort"

	"gorm.io/gorm"

	"github.com/wolf0dev/gestion-horario-sub000/internal/model"
	"github.com/wolf0dev/gestion-horario-sub000/internal/repository"
)

// Dobles de repositorio respaldados por mapas en memoria. Devuelven
// gorm.ErrRecordNotFound igual que los reales para que el despacho por
// errors.Is de los servicios se ejerza tal cual.

type mockUsuarioRepo struct {
	usuarios map[int64]*model.Usuario
	seq      int64
}

func newMockUsuarioRepo() *mockUsuarioRepo {
	return &mockUsuarioRepo{usuarios: make(map[int64]*model.Usuario)}
}

func (m *mockUsuarioRepo) Create(_ context.Context, u *model.Usuario) error {
	m.seq++
	u.ID = m.seq
	m.usuarios[u.ID] = u
	return nil
}

func (m *mockUsuarioRepo) GetByID(_ context.Context, id int64) (*model.Usuario, error) {
	if u, ok := m.usuarios[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) GetByUsername(_ context.Context, username string) (*model.Usuario, error) {
	for _, u := range m.usuarios {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRepo) List(_ context.Context) ([]model.Usuario, error) {
	var filas []model.Usuario
	for _, u := range m.usuarios {
		filas = append(filas, *u)
	}
	return filas, nil
}

func (m *mockUsuarioRepo) Count(_ context.Context) (int64, error) {
	return int64(len(m.usuarios)), nil
}

func (m *mockUsuarioRepo) Update(_ context.Context, u *model.Usuario) error {
	if _, ok := m.usuarios[u.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.usuarios[u.ID] = u
	return nil
}

func (m *mockUsuarioRepo) Delete(_ context.Context, id int64) error {
	delete(m.usuarios, id)
	return nil
}

type mockRolRepo struct {
	roles map[int64]*model.Rol
	seq   int64
}

func newMockRolRepo() *mockRolRepo {
	return &mockRolRepo{roles: make(map[int64]*model.Rol)}
}

func (m *mockRolRepo) Create(_ context.Context, r *model.Rol) error {
	m.seq++
	r.ID = m.seq
	m.roles[r.ID] = r
	return nil
}

func (m *mockRolRepo) GetByID(_ context.Context, id int64) (*model.Rol, error) {
	if r, ok := m.roles[id]; ok {
		return r, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRolRepo) GetByNombre(_ context.Context, nombre string) (*model.Rol, error) {
	for _, r := range m.roles {
		if r.Nombre == nombre {
			return r, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockRolRepo) List(_ context.Context) ([]model.Rol, error) {
	var filas []model.Rol
	for _, r := range m.roles {
		filas = append(filas, *r)
	}
	return filas, nil
}

func (m *mockRolRepo) Update(_ context.Context, r *model.Rol) error {
	if _, ok := m.roles[r.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.roles[r.ID] = r
	return nil
}

func (m *mockRolRepo) Delete(_ context.Context, id int64) error {
	delete(m.roles, id)
	return nil
}

type mockUsuarioRolRepo struct {
	filas map[int64]*model.UsuarioRol
	seq   int64
}

func newMockUsuarioRolRepo() *mockUsuarioRolRepo {
	return &mockUsuarioRolRepo{filas: make(map[int64]*model.UsuarioRol)}
}

func (m *mockUsuarioRolRepo) Create(_ context.Context, ur *model.UsuarioRol) error {
	m.seq++
	ur.ID = m.seq
	m.filas[ur.ID] = ur
	return nil
}

func (m *mockUsuarioRolRepo) GetByID(_ context.Context, id int64) (*model.UsuarioRol, error) {
	if f, ok := m.filas[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUsuarioRolRepo) List(_ context.Context) ([]model.UsuarioRol, error) {
	var filas []model.UsuarioRol
	for _, f := range m.filas {
		filas = append(filas, *f)
	}
	return filas, nil
}

func (m *mockUsuarioRolRepo) Update(_ context.Context, ur *model.UsuarioRol) error {
	if _, ok := m.filas[ur.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.filas[ur.ID] = ur
	return nil
}

func (m *mockUsuarioRolRepo) Delete(_ context.Context, id int64) error {
	delete(m.filas, id)
	return nil
}

type mockAulaRepo struct {
	aulas map[int64]*model.Aula
	seq   int64
}

func newMockAulaRepo() *mockAulaRepo {
	return &mockAulaRepo{aulas: make(map[int64]*model.Aula)}
}

func (m *mockAulaRepo) Create(_ context.Context, a *model.Aula) error {
	m.seq++
	a.ID = m.seq
	m.aulas[a.ID] = a
	return nil
}

func (m *mockAulaRepo) GetByID(_ context.Context, id int64) (*model.Aula, error) {
	if a, ok := m.aulas[id]; ok {
		return a, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAulaRepo) GetByCodigo(_ context.Context, codigo string) (*model.Aula, error) {
	for _, a := range m.aulas {
		if a.Codigo == codigo {
			return a, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockAulaRepo) List(_ context.Context) ([]model.Aula, error) {
	var filas []model.Aula
	for _, a := range m.aulas {
		filas = append(filas, *a)
	}
	return filas, nil
}

func (m *mockAulaRepo) Update(_ context.Context, a *model.Aula) error {
	if _, ok := m.aulas[a.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.aulas[a.ID] = a
	return nil
}

func (m *mockAulaRepo) Delete(_ context.Context, id int64) error {
	delete(m.aulas, id)
	return nil
}

type mockProfesorRepo struct {
	profesores map[int64]*model.Profesor
	seq        int64
}

func newMockProfesorRepo() *mockProfesorRepo {
	return &mockProfesorRepo{profesores: make(map[int64]*model.Profesor)}
}

func (m *mockProfesorRepo) Create(_ context.Context, p *model.Profesor) error {
	m.seq++
	p.ID = m.seq
	m.profesores[p.ID] = p
	return nil
}

func (m *mockProfesorRepo) GetByID(_ context.Context, id int64) (*model.Profesor, error) {
	if p, ok := m.profesores[id]; ok {
		return p, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfesorRepo) GetByCedula(_ context.Context, cedula string) (*model.Profesor, error) {
	for _, p := range m.profesores {
		if p.Cedula == cedula {
			return p, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockProfesorRepo) List(_ context.Context) ([]model.Profesor, error) {
	var filas []model.Profesor
	for _, p := range m.profesores {
		filas = append(filas, *p)
	}
	return filas, nil
}

func (m *mockProfesorRepo) Update(_ context.Context, p *model.Profesor) error {
	if _, ok := m.profesores[p.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.profesores[p.ID] = p
	return nil
}

func (m *mockProfesorRepo) Delete(_ context.Context, id int64) error {
	delete(m.profesores, id)
	return nil
}

type mockTrayectoUnidadRepo struct {
	filas map[int64]*model.TrayectoUnidadCurricular
	seq   int64
}

func newMockTrayectoUnidadRepo() *mockTrayectoUnidadRepo {
	return &mockTrayectoUnidadRepo{filas: make(map[int64]*model.TrayectoUnidadCurricular)}
}

func (m *mockTrayectoUnidadRepo) Create(_ context.Context, tu *model.TrayectoUnidadCurricular) error {
	m.seq++
	tu.ID = m.seq
	m.filas[tu.ID] = tu
	return nil
}

func (m *mockTrayectoUnidadRepo) GetByID(_ context.Context, id int64) (*model.TrayectoUnidadCurricular, error) {
	if f, ok := m.filas[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTrayectoUnidadRepo) List(_ context.Context) ([]model.TrayectoUnidadCurricular, error) {
	var filas []model.TrayectoUnidadCurricular
	for _, f := range m.filas {
		filas = append(filas, *f)
	}
	return filas, nil
}

func (m *mockTrayectoUnidadRepo) ListByTrayecto(_ context.Context, trayectoID int64) ([]model.TrayectoUnidadCurricular, error) {
	var filas []model.TrayectoUnidadCurricular
	for _, f := range m.filas {
		if f.TrayectoID == trayectoID {
			filas = append(filas, *f)
		}
	}
	return filas, nil
}

func (m *mockTrayectoUnidadRepo) Update(_ context.Context, tu *model.TrayectoUnidadCurricular) error {
	if _, ok := m.filas[tu.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.filas[tu.ID] = tu
	return nil
}

func (m *mockTrayectoUnidadRepo) Delete(_ context.Context, id int64) error {
	delete(m.filas, id)
	return nil
}

type mockBloqueRepo struct {
	bloques map[int64]*model.BloqueHorario
	seq     int64
}

func newMockBloqueRepo() *mockBloqueRepo {
	return &mockBloqueRepo{bloques: make(map[int64]*model.BloqueHorario)}
}

func (m *mockBloqueRepo) Create(_ context.Context, b *model.BloqueHorario) error {
	m.seq++
	b.ID = m.seq
	m.bloques[b.ID] = b
	return nil
}

func (m *mockBloqueRepo) GetByID(_ context.Context, id int64) (*model.BloqueHorario, error) {
	if b, ok := m.bloques[id]; ok {
		return b, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockBloqueRepo) List(_ context.Context) ([]model.BloqueHorario, error) {
	var filas []model.BloqueHorario
	for _, b := range m.bloques {
		filas = append(filas, *b)
	}
	// mismo orden que el repositorio real (id ASC)
	sort.Slice(filas, func(i, j int) bool { return filas[i].ID < filas[j].ID })
	return filas, nil
}

func (m *mockBloqueRepo) Update(_ context.Context, b *model.BloqueHorario) error {
	if _, ok := m.bloques[b.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.bloques[b.ID] = b
	return nil
}

func (m *mockBloqueRepo) Delete(_ context.Context, id int64) error {
	delete(m.bloques, id)
	return nil
}

type mockDiaRepo struct {
	dias map[int64]*model.DiaSemana
	seq  int64
}

func newMockDiaRepo() *mockDiaRepo {
	return &mockDiaRepo{dias: make(map[int64]*model.DiaSemana)}
}

func (m *mockDiaRepo) Create(_ context.Context, d *model.DiaSemana) error {
	m.seq++
	d.ID = m.seq
	m.dias[d.ID] = d
	return nil
}

func (m *mockDiaRepo) GetByID(_ context.Context, id int64) (*model.DiaSemana, error) {
	if d, ok := m.dias[id]; ok {
		return d, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDiaRepo) List(_ context.Context) ([]model.DiaSemana, error) {
	var filas []model.DiaSemana
	for _, d := range m.dias {
		filas = append(filas, *d)
	}
	// mismo orden que el repositorio real (id ASC)
	sort.Slice(filas, func(i, j int) bool { return filas[i].ID < filas[j].ID })
	return filas, nil
}

func (m *mockDiaRepo) Update(_ context.Context, d *model.DiaSemana) error {
	if _, ok := m.dias[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.dias[d.ID] = d
	return nil
}

func (m *mockDiaRepo) Delete(_ context.Context, id int64) error {
	delete(m.dias, id)
	return nil
}

type mockDisponibilidadProfesorRepo struct {
	filas map[int64]*model.DisponibilidadProfesor
	seq   int64
}

func newMockDisponibilidadProfesorRepo() *mockDisponibilidadProfesorRepo {
	return &mockDisponibilidadProfesorRepo{filas: make(map[int64]*model.DisponibilidadProfesor)}
}

func (m *mockDisponibilidadProfesorRepo) Create(_ context.Context, d *model.DisponibilidadProfesor) error {
	m.seq++
	d.ID = m.seq
	m.filas[d.ID] = d
	return nil
}

func (m *mockDisponibilidadProfesorRepo) GetByID(_ context.Context, id int64) (*model.DisponibilidadProfesor, error) {
	if f, ok := m.filas[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDisponibilidadProfesorRepo) GetBySlot(_ context.Context, profesorID, diaID, bloqueID int64) (*model.DisponibilidadProfesor, error) {
	for _, f := range m.filas {
		if f.ProfesorID == profesorID && f.DiaSemanaID == diaID && f.BloqueHorarioID == bloqueID {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDisponibilidadProfesorRepo) List(_ context.Context) ([]model.DisponibilidadProfesor, error) {
	var filas []model.DisponibilidadProfesor
	for _, f := range m.filas {
		filas = append(filas, *f)
	}
	return filas, nil
}

func (m *mockDisponibilidadProfesorRepo) Update(_ context.Context, d *model.DisponibilidadProfesor) error {
	if _, ok := m.filas[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.filas[d.ID] = d
	return nil
}

func (m *mockDisponibilidadProfesorRepo) Delete(_ context.Context, id int64) error {
	delete(m.filas, id)
	return nil
}

type mockDisponibilidadAulaRepo struct {
	filas map[int64]*model.DisponibilidadAula
	seq   int64
}

func newMockDisponibilidadAulaRepo() *mockDisponibilidadAulaRepo {
	return &mockDisponibilidadAulaRepo{filas: make(map[int64]*model.DisponibilidadAula)}
}

func (m *mockDisponibilidadAulaRepo) Create(_ context.Context, d *model.DisponibilidadAula) error {
	m.seq++
	d.ID = m.seq
	m.filas[d.ID] = d
	return nil
}

func (m *mockDisponibilidadAulaRepo) GetByID(_ context.Context, id int64) (*model.DisponibilidadAula, error) {
	if f, ok := m.filas[id]; ok {
		return f, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDisponibilidadAulaRepo) GetBySlot(_ context.Context, aulaID, diaID, bloqueID int64) (*model.DisponibilidadAula, error) {
	for _, f := range m.filas {
		if f.AulaID == aulaID && f.DiaSemanaID == diaID && f.BloqueHorarioID == bloqueID {
			return f, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockDisponibilidadAulaRepo) ListBySlot(_ context.Context, diaID, bloqueID int64) ([]model.DisponibilidadAula, error) {
	var filas []model.DisponibilidadAula
	for _, f := range m.filas {
		if f.DiaSemanaID == diaID && f.BloqueHorarioID == bloqueID {
			filas = append(filas, *f)
		}
	}
	return filas, nil
}

func (m *mockDisponibilidadAulaRepo) List(_ context.Context) ([]model.DisponibilidadAula, error) {
	var filas []model.DisponibilidadAula
	for _, f := range m.filas {
		filas = append(filas, *f)
	}
	return filas, nil
}

func (m *mockDisponibilidadAulaRepo) Update(_ context.Context, d *model.DisponibilidadAula) error {
	if _, ok := m.filas[d.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.filas[d.ID] = d
	return nil
}

func (m *mockDisponibilidadAulaRepo) Delete(_ context.Context, id int64) error {
	delete(m.filas, id)
	return nil
}

type mockHorarioRepo struct {
	filas map[int64]*model.Horario
	seq   int64
}

func newMockHorarioRepo() *mockHorarioRepo {
	return &mockHorarioRepo{filas: make(map[int64]*model.Horario)}
}

func (m *mockHorarioRepo) Create(_ context.Context, h *model.Horario) error {
	m.seq++
	h.ID = m.seq
	copia := *h
	m.filas[h.ID] = &copia
	return nil
}

func (m *mockHorarioRepo) GetByID(_ context.Context, id int64) (*model.Horario, error) {
	if f, ok := m.filas[id]; ok {
		copia := *f
		return &copia, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHorarioRepo) List(_ context.Context) ([]model.Horario, error) {
	var filas []model.Horario
	for _, f := range m.filas {
		filas = append(filas, *f)
	}
	return filas, nil
}

func (m *mockHorarioRepo) ListByProfesor(_ context.Context, profesorID int64) ([]model.Horario, error) {
	var filas []model.Horario
	for _, f := range m.filas {
		if f.ProfesorID == profesorID {
			filas = append(filas, *f)
		}
	}
	return filas, nil
}

func (m *mockHorarioRepo) FindActivoProfesorSlot(_ context.Context, profesorID, diaID, bloqueID int64) (*model.Horario, error) {
	for _, f := range m.filas {
		if f.Activo && f.ProfesorID == profesorID && f.DiaSemanaID == diaID && f.BloqueHorarioID == bloqueID {
			copia := *f
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHorarioRepo) FindActivoAulaSlot(_ context.Context, aulaID, diaID, bloqueID int64) (*model.Horario, error) {
	for _, f := range m.filas {
		if f.Activo && f.AulaID == aulaID && f.DiaSemanaID == diaID && f.BloqueHorarioID == bloqueID {
			copia := *f
			return &copia, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockHorarioRepo) Update(_ context.Context, h *model.Horario) error {
	if _, ok := m.filas[h.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	copia := *h
	m.filas[h.ID] = &copia
	return nil
}

func (m *mockHorarioRepo) Delete(_ context.Context, id int64) error {
	delete(m.filas, id)
	return nil
}

// repoDePrueba agregado con los dobles necesarios para los servicios bajo prueba
func repoDePrueba() *repository.Repository {
	return &repository.Repository{
		Usuario:                newMockUsuarioRepo(),
		Rol:                    newMockRolRepo(),
		UsuarioRol:             newMockUsuarioRolRepo(),
		Aula:                   newMockAulaRepo(),
		Profesor:               newMockProfesorRepo(),
		TrayectoUnidad:         newMockTrayectoUnidadRepo(),
		BloqueHorario:          newMockBloqueRepo(),
		DiaSemana:              newMockDiaRepo(),
		DisponibilidadProfesor: newMockDisponibilidadProfesorRepo(),
		DisponibilidadAula:     newMockDisponibilidadAulaRepo(),
		Horario:                newMockHorarioRepo(),
	}
}
