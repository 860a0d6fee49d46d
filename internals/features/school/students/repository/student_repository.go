package repository

import (
	"errors"
	"fmt"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	courseModel "gradebook_backend/internals/features/school/academics/courses/model"
	"gradebook_backend/internals/features/school/students/model"
	helper "gradebook_backend/internals/helpers"
)

/* ====================== STUDENTS ====================== */

// MustFind loads a student with its branch or fails with 404.
func MustFind(tx *gorm.DB, id int64) (*model.StudentModel, error) {
	var m model.StudentModel
	if err := tx.Preload("Branch").First(&m, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, fmt.Sprintf("student %d not found", id))
		}
		return nil, err
	}
	return &m, nil
}

func List(tx *gorm.DB, p helper.Params) ([]model.StudentModel, int64, error) {
	var (
		rows  []model.StudentModel
		total int64
	)
	if err := tx.Model(&model.StudentModel{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}
	q := tx.Preload("Branch").Order("usn ASC")
	if !p.All {
		q = q.Limit(p.Limit()).Offset(p.Offset())
	}
	if err := q.Find(&rows).Error; err != nil {
		return nil, 0, err
	}
	return rows, total, nil
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// Search does a case-insensitive substring match on usn and both names.
func Search(tx *gorm.DB, query string) ([]model.StudentModel, error) {
	pattern := "%" + likeEscaper.Replace(strings.ToLower(query)) + "%"
	var rows []model.StudentModel
	err := tx.Preload("Branch").
		Where(`LOWER(usn) LIKE ? ESCAPE '\' OR LOWER(first_name) LIKE ? ESCAPE '\' OR LOWER(last_name) LIKE ? ESCAPE '\'`,
			pattern, pattern, pattern).
		Order("usn ASC").
		Find(&rows).Error
	return rows, err
}

// DeleteDependents removes memberships, grades and attendance of a student.
func DeleteDependents(tx *gorm.DB, studentID int64) error {
	for _, table := range []string{"student_courses", "grades", "attendances"} {
		if err := tx.Exec("DELETE FROM "+table+" WHERE student_id = ?", studentID).Error; err != nil {
			return err
		}
	}
	return nil
}

/* ====================== MEMBERSHIP ====================== */

// AddMembership is idempotent: an existing pair is left untouched.
func AddMembership(tx *gorm.DB, studentID, courseID int64) error {
	link := model.StudentCourseModel{StudentID: studentID, CourseID: courseID}
	return tx.Omit(clause.Associations).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(&link).Error
}

func RemoveMembership(tx *gorm.DB, studentID, courseID int64) error {
	return tx.Where("student_id = ? AND course_id = ?", studentID, courseID).
		Delete(&model.StudentCourseModel{}).Error
}

// CoursesOf returns the courses of every listed student, each slice
// ordered by course code.
func CoursesOf(tx *gorm.DB, studentIDs []int64) (map[int64][]courseModel.CourseModel, error) {
	out := make(map[int64][]courseModel.CourseModel, len(studentIDs))
	if len(studentIDs) == 0 {
		return out, nil
	}

	var links []model.StudentCourseModel
	if err := tx.Where("student_id IN ?", studentIDs).Find(&links).Error; err != nil {
		return nil, err
	}
	if len(links) == 0 {
		return out, nil
	}

	courseIDs := make([]int64, 0, len(links))
	seen := make(map[int64]struct{}, len(links))
	for _, l := range links {
		if _, ok := seen[l.CourseID]; !ok {
			seen[l.CourseID] = struct{}{}
			courseIDs = append(courseIDs, l.CourseID)
		}
	}

	var courses []courseModel.CourseModel
	if err := tx.Where("id IN ?", courseIDs).Order("code ASC").Find(&courses).Error; err != nil {
		return nil, err
	}

	members := make(map[int64]map[int64]struct{}, len(studentIDs))
	for _, l := range links {
		if members[l.StudentID] == nil {
			members[l.StudentID] = map[int64]struct{}{}
		}
		members[l.StudentID][l.CourseID] = struct{}{}
	}
	for _, c := range courses {
		for sid, set := range members {
			if _, ok := set[c.ID]; ok {
				out[sid] = append(out[sid], c)
			}
		}
	}
	return out, nil
}

// EnrolledCourses lists the courses of one student by code.
func EnrolledCourses(tx *gorm.DB, studentID int64) ([]courseModel.CourseModel, error) {
	var rows []courseModel.CourseModel
	err := tx.Joins("JOIN student_courses sc ON sc.course_id = courses.id").
		Where("sc.student_id = ?", studentID).
		Order("courses.code ASC").
		Find(&rows).Error
	return rows, err
}

// CourseStudents lists the students enrolled in a course by USN.
func CourseStudents(tx *gorm.DB, courseID int64) ([]model.StudentModel, error) {
	var rows []model.StudentModel
	err := tx.Preload("Branch").
		Joins("JOIN student_courses sc ON sc.student_id = students.id").
		Where("sc.course_id = ?", courseID).
		Order("students.usn ASC").
		Find(&rows).Error
	return rows, err
}

func IDs(rows []model.StudentModel) []int64 {
	ids := make([]int64, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}
