package repo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"employee-api/internal/domain"
	"employee-api/internal/feature/employee"
)

type EmployeeRepo struct {
	db   *mongo.Database
	coll *mongo.Collection
}

func NewEmployeeRepo(db *mongo.Database) *EmployeeRepo {
	return &EmployeeRepo{db: db, coll: db.Collection(employee.CollectionName())}
}

// EnsureSchema 启动时幂等建表：集合不存在则带校验器创建，再补唯一索引
func (r *EmployeeRepo) EnsureSchema(ctx context.Context) error {
	names, err := r.db.ListCollectionNames(ctx, bson.M{"name": employee.CollectionName()})
	if err != nil {
		return err
	}
	if len(names) == 0 {
		opts := options.CreateCollection().SetValidator(bson.M{"$jsonSchema": employee.JSONSchema()})
		if err := r.db.CreateCollection(ctx, employee.CollectionName(), opts); err != nil {
			// 并发启动兜底：NamespaceExists 不算失败
			var cmdErr mongo.CommandError
			if !errors.As(err, &cmdErr) || cmdErr.Code != 48 {
				return err
			}
		}
	}
	_, err = r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "employee_id", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	return err
}

// Create 单次往返：响应直接由输入 + 分配的 _id 组装，不回读
func (r *EmployeeRepo) Create(ctx context.Context, e *domain.Employee) (*domain.Employee, error) {
	doc := employee.FromDomain(e)
	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return nil, domain.ErrDuplicateEmployeeID
		}
		return nil, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		doc.ID = oid
	}
	return doc.ToDomain(), nil
}

func (r *EmployeeRepo) FindByEmployeeID(ctx context.Context, employeeID string) (*domain.Employee, error) {
	var doc employee.Doc
	err := r.coll.FindOne(ctx, bson.M{"employee_id": employeeID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

// Update 用 FindOneAndUpdate 返回更新后的文档，避免写后再读的竞态
func (r *EmployeeRepo) Update(ctx context.Context, employeeID string, upd *domain.EmployeeUpdate) (*domain.Employee, error) {
	set := bson.M{}
	for k, v := range upd.Fields() {
		set[k] = v
	}
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var doc employee.Doc
	err := r.coll.FindOneAndUpdate(ctx, bson.M{"employee_id": employeeID}, bson.M{"$set": set}, opts).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return doc.ToDomain(), nil
}

func (r *EmployeeRepo) Delete(ctx context.Context, employeeID string) (bool, error) {
	res, err := r.coll.DeleteOne(ctx, bson.M{"employee_id": employeeID})
	if err != nil {
		return false, err
	}
	return res.DeletedCount > 0, nil
}

func (r *EmployeeRepo) List(ctx context.Context, f domain.ListFilter) ([]domain.Employee, error) {
	filter := bson.M{}
	if f.Department != "" {
		filter["department"] = f.Department
	}
	opts := options.Find().
		SetSort(bson.D{{Key: "joining_date", Value: -1}}).
		SetSkip(f.Offset()).
		SetLimit(int64(f.PageSize))
	return r.find(ctx, filter, opts)
}

// SearchBySkill 精确成员匹配（区分大小写），无显式排序
func (r *EmployeeRepo) SearchBySkill(ctx context.Context, skill string, page, pageSize int) ([]domain.Employee, error) {
	filter := bson.M{"skills": bson.M{"$in": []string{skill}}}
	opts := options.Find().
		SetSkip(int64(page-1) * int64(pageSize)).
		SetLimit(int64(pageSize))
	return r.find(ctx, filter, opts)
}

func (r *EmployeeRepo) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]domain.Employee, error) {
	cur, err := r.coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.Employee{}
	for cur.Next(ctx) {
		var doc employee.Doc
		if err := cur.Decode(&doc); err != nil {
			return nil, err
		}
		out = append(out, *doc.ToDomain())
	}
	return out, cur.Err()
}

func (r *EmployeeRepo) AvgSalaryByDepartment(ctx context.Context) ([]domain.DepartmentAvgSalary, error) {
	pipeline := mongo.Pipeline{
		{{Key: "$group", Value: bson.M{"_id": "$department", "avg_salary": bson.M{"$avg": "$salary"}}}},
		{{Key: "$project", Value: bson.M{"department": "$_id", "avg_salary": "$avg_salary", "_id": 0}}},
	}
	cur, err := r.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	out := []domain.DepartmentAvgSalary{}
	for cur.Next(ctx) {
		var row struct {
			Department string  `bson:"department"`
			AvgSalary  float64 `bson:"avg_salary"`
		}
		if err := cur.Decode(&row); err != nil {
			return nil, err
		}
		out = append(out, domain.DepartmentAvgSalary{Department: row.Department, AvgSalary: row.AvgSalary})
	}
	return out, cur.Err()
}

func (r *EmployeeRepo) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}
