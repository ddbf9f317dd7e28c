package services

import (
	"context"
	"sync"

	"github.com/selin/acadcore/internal/app/models"
	"github.com/selin/acadcore/internal/pkg/apperrors"
)

// fakeTx satisfies Transactor without a database; the callback runs
// directly on the caller's context.
type fakeTx struct{}

func (fakeTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

// rowLockTx imitates a database transaction holding row locks: locks
// acquired through the locking load fakes are released only when the
// callback returns, commit and rollback alike.
type rowLockTx struct{}

type heldLocksKey struct{}

type heldLocks struct {
	mu    sync.Mutex
	locks []*sync.Mutex
}

func (h *heldLocks) add(m *sync.Mutex) {
	h.mu.Lock()
	h.locks = append(h.locks, m)
	h.mu.Unlock()
}

func (h *heldLocks) release() {
	h.mu.Lock()
	defer h.mu.Unlock()
	for _, m := range h.locks {
		m.Unlock()
	}
	h.locks = nil
}

func (rowLockTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	held := &heldLocks{}
	err := fn(context.WithValue(ctx, heldLocksKey{}, held))
	held.release()
	return err
}

// lockTable hands out one mutex per load row, the in-memory stand-in
// for SELECT ... FOR UPDATE.
type lockTable struct {
	mu    sync.Mutex
	locks map[loadKey]*sync.Mutex
}

func newLockTable() *lockTable {
	return &lockTable{locks: make(map[loadKey]*sync.Mutex)}
}

// acquire blocks until the row lock is free. Inside a rowLockTx scope
// the lock stays held until the transaction ends; outside one it is
// released immediately.
func (t *lockTable) acquire(ctx context.Context, key loadKey) {
	t.mu.Lock()
	m, ok := t.locks[key]
	if !ok {
		m = &sync.Mutex{}
		t.locks[key] = m
	}
	t.mu.Unlock()

	m.Lock()
	if held, ok := ctx.Value(heldLocksKey{}).(*heldLocks); ok {
		held.add(m)
		return
	}
	m.Unlock()
}

// lockingTeacherLoads wraps fakeTeacherLoads with row locking on
// GetForUpdate.
type lockingTeacherLoads struct {
	*fakeTeacherLoads
	table *lockTable
}

func (f *lockingTeacherLoads) GetForUpdate(ctx context.Context, teacherID, semesterID int64) (*models.TeacherLoad, error) {
	f.table.acquire(ctx, loadKey{teacherID, semesterID})
	return f.fakeTeacherLoads.Get(ctx, teacherID, semesterID)
}

// lockingStudentLoads wraps fakeStudentLoads with row locking on
// GetForUpdate.
type lockingStudentLoads struct {
	*fakeStudentLoads
	table *lockTable
}

func (f *lockingStudentLoads) GetForUpdate(ctx context.Context, studentID, semesterID int64) (*models.StudentLoad, error) {
	f.table.acquire(ctx, loadKey{studentID, semesterID})
	return f.fakeStudentLoads.Get(ctx, studentID, semesterID)
}

type fakeUsers struct {
	users map[int64]*models.User
}

func newFakeUsers(users ...*models.User) *fakeUsers {
	f := &fakeUsers{users: make(map[int64]*models.User)}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUsers) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, ok := f.users[id]
	if !ok {
		return nil, apperrors.ErrUserNotFound
	}
	return user, nil
}

type fakeSemesters struct {
	semesters map[int64]*models.Semester
	nextID    int64
}

func newFakeSemesters(semesters ...*models.Semester) *fakeSemesters {
	f := &fakeSemesters{semesters: make(map[int64]*models.Semester), nextID: 1}
	for _, s := range semesters {
		f.semesters[s.ID] = s
		if s.ID >= f.nextID {
			f.nextID = s.ID + 1
		}
	}
	return f
}

func (f *fakeSemesters) Create(ctx context.Context, semester *models.Semester) error {
	for _, existing := range f.semesters {
		if existing.Year == semester.Year && existing.Term == semester.Term {
			return apperrors.ErrSemesterAlreadyExists
		}
	}
	semester.ID = f.nextID
	f.nextID++
	f.semesters[semester.ID] = semester
	return nil
}

func (f *fakeSemesters) GetByID(ctx context.Context, id int64) (*models.Semester, error) {
	semester, ok := f.semesters[id]
	if !ok {
		return nil, apperrors.ErrSemesterNotFound
	}
	return semester, nil
}

func (f *fakeSemesters) GetAll(ctx context.Context) ([]*models.Semester, error) {
	all := make([]*models.Semester, 0, len(f.semesters))
	for _, s := range f.semesters {
		all = append(all, s)
	}
	return all, nil
}

func (f *fakeSemesters) ExistsByYearTerm(ctx context.Context, year int, term models.Term) (bool, error) {
	for _, s := range f.semesters {
		if s.Year == year && s.Term == term {
			return true, nil
		}
	}
	return false, nil
}

type fakeCourses struct {
	courses map[int64]*models.Course
	prereqs map[int64][]int64
	// offered records course IDs per semester, fed by fakeOfferings
	offered map[int64][]int64
	nextID  int64
}

func newFakeCourses(courses ...*models.Course) *fakeCourses {
	f := &fakeCourses{
		courses: make(map[int64]*models.Course),
		prereqs: make(map[int64][]int64),
		offered: make(map[int64][]int64),
		nextID:  1,
	}
	for _, c := range courses {
		f.courses[c.ID] = c
		if c.ID >= f.nextID {
			f.nextID = c.ID + 1
		}
	}
	return f
}

func (f *fakeCourses) Create(ctx context.Context, course *models.Course) error {
	for _, existing := range f.courses {
		if existing.Code == course.Code {
			return apperrors.ErrCourseCodeExists
		}
	}
	course.ID = f.nextID
	f.nextID++
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourses) AddPrerequisite(ctx context.Context, courseID, prerequisiteID int64) error {
	if courseID == prerequisiteID {
		return apperrors.ErrCourseSelfPrerequisite
	}
	f.prereqs[courseID] = append(f.prereqs[courseID], prerequisiteID)
	return nil
}

func (f *fakeCourses) GetByID(ctx context.Context, id int64) (*models.Course, error) {
	course, ok := f.courses[id]
	if !ok {
		return nil, apperrors.ErrCourseNotFound
	}
	return course, nil
}

func (f *fakeCourses) GetByCode(ctx context.Context, code string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.Code == code {
			return c, nil
		}
	}
	return nil, apperrors.ErrCourseNotFound
}

func (f *fakeCourses) GetByIDs(ctx context.Context, ids []int64) ([]*models.Course, error) {
	var found []*models.Course
	for _, id := range ids {
		if c, ok := f.courses[id]; ok {
			found = append(found, c)
		}
	}
	return found, nil
}

func (f *fakeCourses) GetAll(ctx context.Context) ([]*models.Course, error) {
	all := make([]*models.Course, 0, len(f.courses))
	for _, c := range f.courses {
		all = append(all, c)
	}
	return all, nil
}

func (f *fakeCourses) GetBySemester(ctx context.Context, semesterID int64) ([]*models.Course, error) {
	seen := make(map[int64]bool)
	var result []*models.Course
	for _, id := range f.offered[semesterID] {
		if seen[id] {
			continue
		}
		seen[id] = true
		if c, ok := f.courses[id]; ok {
			result = append(result, c)
		}
	}
	return result, nil
}

func (f *fakeCourses) GetPrerequisites(ctx context.Context, courseID int64) ([]*models.Course, error) {
	var prereqs []*models.Course
	for _, id := range f.prereqs[courseID] {
		if c, ok := f.courses[id]; ok {
			prereqs = append(prereqs, c)
		}
	}
	return prereqs, nil
}

type loadKey struct {
	personID   int64
	semesterID int64
}

type fakeTeacherLoads struct {
	loads  map[loadKey]*models.TeacherLoad
	nextID int64
}

func newFakeTeacherLoads() *fakeTeacherLoads {
	return &fakeTeacherLoads{loads: make(map[loadKey]*models.TeacherLoad), nextID: 1}
}

func (f *fakeTeacherLoads) Create(ctx context.Context, load *models.TeacherLoad) error {
	key := loadKey{load.TeacherID, load.SemesterID}
	if _, ok := f.loads[key]; ok {
		return apperrors.ErrLoadAlreadyAssigned
	}
	load.ID = f.nextID
	f.nextID++
	f.loads[key] = load
	return nil
}

func (f *fakeTeacherLoads) Get(ctx context.Context, teacherID, semesterID int64) (*models.TeacherLoad, error) {
	load, ok := f.loads[loadKey{teacherID, semesterID}]
	if !ok {
		return nil, apperrors.ErrLoadNotFound
	}
	return load, nil
}

func (f *fakeTeacherLoads) GetForUpdate(ctx context.Context, teacherID, semesterID int64) (*models.TeacherLoad, error) {
	return f.Get(ctx, teacherID, semesterID)
}

func (f *fakeTeacherLoads) Exists(ctx context.Context, teacherID, semesterID int64) (bool, error) {
	_, ok := f.loads[loadKey{teacherID, semesterID}]
	return ok, nil
}

type fakeStudentLoads struct {
	loads  map[loadKey]*models.StudentLoad
	nextID int64
}

func newFakeStudentLoads() *fakeStudentLoads {
	return &fakeStudentLoads{loads: make(map[loadKey]*models.StudentLoad), nextID: 1}
}

func (f *fakeStudentLoads) Create(ctx context.Context, load *models.StudentLoad) error {
	key := loadKey{load.StudentID, load.SemesterID}
	if _, ok := f.loads[key]; ok {
		return apperrors.ErrLoadAlreadyAssigned
	}
	load.ID = f.nextID
	f.nextID++
	f.loads[key] = load
	return nil
}

func (f *fakeStudentLoads) Get(ctx context.Context, studentID, semesterID int64) (*models.StudentLoad, error) {
	load, ok := f.loads[loadKey{studentID, semesterID}]
	if !ok {
		return nil, apperrors.ErrLoadNotFound
	}
	return load, nil
}

func (f *fakeStudentLoads) GetForUpdate(ctx context.Context, studentID, semesterID int64) (*models.StudentLoad, error) {
	return f.Get(ctx, studentID, semesterID)
}

func (f *fakeStudentLoads) Exists(ctx context.Context, studentID, semesterID int64) (bool, error) {
	_, ok := f.loads[loadKey{studentID, semesterID}]
	return ok, nil
}

// fakeOfferings keeps offerings in memory and sums credits through the
// course catalog it is given.
type fakeOfferings struct {
	offerings []*models.CourseOffering
	courses   *fakeCourses
	nextID    int64
}

func newFakeOfferings(courses *fakeCourses) *fakeOfferings {
	return &fakeOfferings{courses: courses, nextID: 1}
}

func (f *fakeOfferings) Create(ctx context.Context, offering *models.CourseOffering) error {
	for _, o := range f.offerings {
		if o.TeacherID == offering.TeacherID && o.SemesterID == offering.SemesterID && o.CourseID == offering.CourseID {
			return apperrors.ErrOfferingAlreadyExists
		}
	}
	offering.ID = f.nextID
	f.nextID++
	f.offerings = append(f.offerings, offering)
	f.courses.offered[offering.SemesterID] = append(f.courses.offered[offering.SemesterID], offering.CourseID)
	return nil
}

func (f *fakeOfferings) Exists(ctx context.Context, teacherID, semesterID, courseID int64) (bool, error) {
	for _, o := range f.offerings {
		if o.TeacherID == teacherID && o.SemesterID == semesterID && o.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeOfferings) SumCredits(ctx context.Context, teacherID, semesterID int64) (int, error) {
	total := 0
	for _, o := range f.offerings {
		if o.TeacherID == teacherID && o.SemesterID == semesterID {
			if c, ok := f.courses.courses[o.CourseID]; ok {
				total += c.Credits
			}
		}
	}
	return total, nil
}

func (f *fakeOfferings) GetByTeacherAndSemester(ctx context.Context, teacherID, semesterID int64) ([]*models.CourseOffering, error) {
	var result []*models.CourseOffering
	for _, o := range f.offerings {
		if o.TeacherID == teacherID && o.SemesterID == semesterID {
			withCourse := *o
			withCourse.Course = f.courses.courses[o.CourseID]
			result = append(result, &withCourse)
		}
	}
	return result, nil
}

// fakeEnrollments mirrors fakeOfferings for student enrollments.
type fakeEnrollments struct {
	enrollments []*models.Enrollment
	courses     *fakeCourses
	nextID      int64
}

func newFakeEnrollments(courses *fakeCourses) *fakeEnrollments {
	return &fakeEnrollments{courses: courses, nextID: 1}
}

func (f *fakeEnrollments) Create(ctx context.Context, enrollment *models.Enrollment) error {
	for _, e := range f.enrollments {
		if e.StudentID == enrollment.StudentID && e.SemesterID == enrollment.SemesterID && e.CourseID == enrollment.CourseID {
			return apperrors.ErrAlreadyEnrolled
		}
	}
	enrollment.ID = f.nextID
	f.nextID++
	f.enrollments = append(f.enrollments, enrollment)
	return nil
}

func (f *fakeEnrollments) Exists(ctx context.Context, studentID, semesterID, courseID int64) (bool, error) {
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.SemesterID == semesterID && e.CourseID == courseID {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeEnrollments) SumCredits(ctx context.Context, studentID, semesterID int64) (int, error) {
	total := 0
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.SemesterID == semesterID {
			if c, ok := f.courses.courses[e.CourseID]; ok {
				total += c.Credits
			}
		}
	}
	return total, nil
}

func (f *fakeEnrollments) Get(ctx context.Context, studentID, semesterID, courseID int64) (*models.Enrollment, error) {
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.SemesterID == semesterID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollments) UpdateGrade(ctx context.Context, enrollmentID int64, grade float64) error {
	for _, e := range f.enrollments {
		if e.ID == enrollmentID {
			g := grade
			e.Grade = &g
			return nil
		}
	}
	return apperrors.ErrEnrollmentNotFound
}

func (f *fakeEnrollments) GetByStudentAndSemester(ctx context.Context, studentID, semesterID int64) ([]*models.Enrollment, error) {
	var result []*models.Enrollment
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.SemesterID == semesterID {
			withCourse := *e
			withCourse.Course = f.courses.courses[e.CourseID]
			result = append(result, &withCourse)
		}
	}
	return result, nil
}
